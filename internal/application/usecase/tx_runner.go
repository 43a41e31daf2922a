package usecase

import (
	"context"

	"github.com/jhoicas/istore-api/internal/domain/repository"
)

// TxRunner ejecuta los flujos transaccionales de borrado en cascada.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	// RunStores borra una tienda en cascada: artículos → accesos → tienda.
	RunStores(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		itemRepo repository.ItemRepository,
		accessRepo repository.StoreAccessRepository,
	) error) error

	// RunUsers borra un usuario en cascada: accesos → usuario.
	RunUsers(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		accessRepo repository.StoreAccessRepository,
	) error) error
}
