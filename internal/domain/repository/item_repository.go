package repository

import "github.com/jhoicas/istore-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
//
// IncreaseQuantity y DecreaseQuantity son mutaciones atómicas de una sola
// sentencia: devuelven la cantidad resultante. DecreaseQuantity falla con
// domain.InsufficientStockError si la cantidad pedida supera el stock actual
// (UPDATE condicional, nunca read-then-write) y con domain.ErrItemNotFound
// si el artículo no existe.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListByStore(storeID string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	DeleteByStore(storeID string) error
	IncreaseQuantity(id string, amount int) (int, error)
	DecreaseQuantity(id string, amount int) (int, error)
}
