package entity

import "time"

// Store representa una tienda. El nombre es único (sin distinguir mayúsculas).
type Store struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
