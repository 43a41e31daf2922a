package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
	"github.com/jhoicas/istore-api/internal/domain/validation"
)

// InventoryUseCase gestión de artículos y de stock con control de acceso por tienda.
type InventoryUseCase struct {
	itemRepo   repository.ItemRepository
	accessRepo repository.StoreAccessRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(itemRepo repository.ItemRepository, accessRepo repository.StoreAccessRepository) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, accessRepo: accessRepo}
}

func (uc *InventoryUseCase) hasStoreAccess(actor auth.Actor, storeID string) (bool, error) {
	if actor.IsZero() {
		return false, nil
	}
	if actor.IsAdmin() {
		return true, nil
	}
	return uc.accessRepo.HasAccess(actor.ID, storeID)
}

// CreateItem crea un artículo (solo admin) validando nombre, precio y cantidad.
func (uc *InventoryUseCase) CreateItem(actor auth.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede crear artículos")
	}
	if err := validation.ItemName(in.Name); err != nil {
		return nil, err
	}
	price, err := validation.ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := validation.ParseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Name:      strings.TrimSpace(in.Name),
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ItemsByStore lista los artículos de una tienda. Sin acceso devuelve una
// lista vacía, no un error (denegación suave).
func (uc *InventoryUseCase) ItemsByStore(actor auth.Actor, storeID string) ([]dto.ItemResponse, error) {
	ok, err := uc.hasStoreAccess(actor, storeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []dto.ItemResponse{}, nil
	}
	items, err := uc.itemRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// GetItem devuelve un artículo si el actor tiene acceso a su tienda.
// Sin acceso responde igual que si no existiera.
func (uc *InventoryUseCase) GetItem(actor auth.Actor, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	ok, err := uc.hasStoreAccess(actor, item.StoreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// UpdateItem actualiza nombre, precio y cantidad (solo admin).
func (uc *InventoryUseCase) UpdateItem(actor auth.Actor, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede modificar artículos")
	}

	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if err := validation.ItemName(in.Name); err != nil {
		return nil, err
	}
	price, err := validation.ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := validation.ParseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Price = price
	item.Quantity = quantity
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina un artículo (solo admin).
func (uc *InventoryUseCase) DeleteItem(actor auth.Actor, itemID string) error {
	if !actor.IsAdmin() {
		return domain.Permission("solo un administrador puede eliminar artículos")
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	return uc.itemRepo.Delete(itemID)
}

// IncreaseStock suma amount (> 0) al stock de un artículo. Requiere acceso a
// la tienda. La suma es una sentencia atómica en la base.
func (uc *InventoryUseCase) IncreaseStock(actor auth.Actor, itemID string, amount int) (*dto.StockResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	ok, err := uc.hasStoreAccess(actor, item.StoreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Permission("no tienes acceso a esta tienda")
	}
	if amount <= 0 {
		return nil, domain.Validation("la cantidad debe ser positiva")
	}

	newQuantity, err := uc.itemRepo.IncreaseQuantity(itemID, amount)
	if err != nil {
		return nil, err
	}
	item.Quantity = newQuantity
	return &dto.StockResponse{
		Message: fmt.Sprintf("stock aumentado en %d unidades", amount),
		Item:    *toItemResponse(item),
	}, nil
}

// DecreaseStock resta amount (> 0) al stock. Requiere acceso a la tienda.
// La resta es un UPDATE condicional: si amount supera el stock actual falla
// con "stock insuficiente, stock actual: N" y la cantidad no cambia, incluso
// con decrementos concurrentes.
func (uc *InventoryUseCase) DecreaseStock(actor auth.Actor, itemID string, amount int) (*dto.StockResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	ok, err := uc.hasStoreAccess(actor, item.StoreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Permission("no tienes acceso a esta tienda")
	}
	if amount <= 0 {
		return nil, domain.Validation("la cantidad debe ser positiva")
	}

	newQuantity, err := uc.itemRepo.DecreaseQuantity(itemID, amount)
	if err != nil {
		return nil, err
	}
	item.Quantity = newQuantity
	return &dto.StockResponse{
		Message: fmt.Sprintf("stock reducido en %d unidades", amount),
		Item:    *toItemResponse(item),
	}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		StoreID:   it.StoreID,
		Name:      it.Name,
		Price:     it.Price,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
