package auth

import "github.com/jhoicas/istore-api/internal/domain/entity"

// Actor es la identidad autenticada de la petición en curso, extraída del JWT
// por el middleware. Reemplaza cualquier estado global de sesión: cada llamada
// a un caso de uso recibe su Actor de forma explícita.
type Actor struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin indica si el actor tiene rol de administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// IsZero indica si no hay identidad (petición sin autenticar).
func (a Actor) IsZero() bool {
	return a.ID == ""
}
