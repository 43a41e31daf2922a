package dto

import "time"

// RegisterRequest entrada para registro: email, pseudo, password y confirmación.
type RegisterRequest struct {
	Email           string `json:"email"`
	Pseudo          string `json:"pseudo"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña ni el hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Pseudo    string    `json:"pseudo"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para actualizar perfil.
// Password vacío significa "sin cambio".
type UpdateUserRequest struct {
	Pseudo   string `json:"pseudo"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRoleRequest entrada para cambiar el rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
