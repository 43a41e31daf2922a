package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. Price y Quantity llegan
// como string crudo y se validan/parsean en el paquete validation.
type CreateItemRequest struct {
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// UpdateItemRequest entrada para actualizar un artículo.
type UpdateItemRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockAdjustRequest entrada para aumentar o disminuir stock.
type StockAdjustRequest struct {
	Amount int `json:"amount"`
}

// StockResponse salida de una mutación de stock.
type StockResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}
