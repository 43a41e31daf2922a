package repository

import "github.com/jhoicas/istore-api/internal/domain/entity"

// StoreAccessRepository define el puerto para los accesos usuario-tienda.
// Grant es idempotente: conceder un acceso ya existente no es error.
type StoreAccessRepository interface {
	Grant(userID, storeID string) error
	Revoke(userID, storeID string) error
	HasAccess(userID, storeID string) (bool, error)
	ListStoresForUser(userID string) ([]*entity.Store, error)
	ListUsersForStore(storeID string) ([]*entity.User, error)
	RevokeAllForUser(userID string) error
	RevokeAllForStore(storeID string) error
}
