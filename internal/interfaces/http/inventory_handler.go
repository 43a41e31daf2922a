package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/application/usecase"
)

// InventoryHandler maneja artículos y mutaciones de stock.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateItem godoc
// @Summary      Crear artículo (solo admin)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateItemRequest  true  "store_id, name, price, quantity"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateItem(GetActor(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ItemsByStore godoc
// @Summary      Listar artículos de una tienda (sin acceso: lista vacía)
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ID de la tienda"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/stores/{id}/items [get]
func (h *InventoryHandler) ItemsByStore(c *fiber.Ctx) error {
	out, err := h.uc.ItemsByStore(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Obtener artículo
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar artículo (solo admin)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "name, price, quantity"
// @Success      200   {object}  dto.ItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar artículo (solo admin)
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(GetActor(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "artículo eliminado con éxito"})
}

// IncreaseStock godoc
// @Summary      Aumentar stock (requiere acceso a la tienda)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.StockAdjustRequest  true  "amount > 0"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/increase [post]
func (h *InventoryHandler) IncreaseStock(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.IncreaseStock(GetActor(c), c.Params("id"), in.Amount)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DecreaseStock godoc
// @Summary      Disminuir stock (requiere acceso; nunca queda negativo)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.StockAdjustRequest  true  "amount > 0"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/decrease [post]
func (h *InventoryHandler) DecreaseStock(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.DecreaseStock(GetActor(c), c.Params("id"), in.Amount)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
