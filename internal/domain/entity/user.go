package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema. El primer usuario registrado
// siempre es admin; los demás entran como employee vía whitelist.
type User struct {
	ID           string
	Email        string // único, siempre normalizado (trim + minúsculas)
	Pseudo       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin | employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
