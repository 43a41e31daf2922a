package dto

import "time"

// AddWhitelistRequest entrada para pre-aprobar un email.
type AddWhitelistRequest struct {
	Email string `json:"email"`
}

// WhitelistEntryResponse salida de una entrada de la whitelist.
type WhitelistEntryResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
