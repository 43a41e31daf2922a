package repository

import "github.com/jhoicas/istore-api/internal/domain/entity"

// WhitelistRepository define el puerto para los emails pre-aprobados.
type WhitelistRepository interface {
	Create(entry *entity.WhitelistEntry) error
	IsWhitelisted(email string) (bool, error)
	List() ([]*entity.WhitelistEntry, error)
	Delete(id string) error
	DeleteByEmail(email string) error
}
