package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario de una tienda.
// Quantity nunca es negativa: las bajas de stock se hacen con un UPDATE
// condicional en la capa de persistencia, no con read-then-write.
type Item struct {
	ID        string
	StoreID   string
	Name      string
	Price     decimal.Decimal // >= 0
	Quantity  int             // >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
