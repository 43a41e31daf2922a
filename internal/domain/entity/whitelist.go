package entity

import "time"

// WhitelistEntry email pre-aprobado para registrarse. La entrada se consume
// (se borra) al completar el registro; una vez creada la cuenta ya no aplica.
type WhitelistEntry struct {
	ID        string
	Email     string // único, normalizado
	CreatedAt time.Time
}
