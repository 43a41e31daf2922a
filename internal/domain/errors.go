package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrStoreNotFound      = errors.New("tienda no encontrada")
	ErrItemNotFound       = errors.New("artículo no encontrado")
	ErrEmailAlreadyExists = errors.New("ya existe una cuenta con este email")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrUnauthorized       = errors.New("no autorizado")
)

// ValidationError entrada con formato o rango inválido. El mensaje se muestra
// al usuario tal cual, por eso se construye ya localizado en el paquete validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation construye un ValidationError con el mensaje dado.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// PermissionError el actor no tiene el rol o el acceso requerido.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// Permission construye un PermissionError con el mensaje dado.
func Permission(message string) error {
	return &PermissionError{Message: message}
}

// InsufficientStockError la cantidad pedida supera el stock actual.
// Conserva el stock actual para incluirlo en el mensaje al usuario.
type InsufficientStockError struct {
	Current int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente, stock actual: %d", e.Current)
}
