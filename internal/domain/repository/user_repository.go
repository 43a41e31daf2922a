package repository

import "github.com/jhoicas/istore-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail busca sin distinguir mayúsculas; devuelve (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int, error)
	Update(user *entity.User) error
	Delete(id string) error
}
