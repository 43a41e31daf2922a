package repository

import "github.com/jhoicas/istore-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	// NameExists compara sin distinguir mayúsculas.
	NameExists(name string) (bool, error)
	List() ([]*entity.Store, error)
	Delete(id string) error
}
