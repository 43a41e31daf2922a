package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/application/usecase"
)

// StoreHandler maneja tiendas y accesos de empleados.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda (solo admin)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreRequest  true  "name"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tiendas accesibles (admin: todas; empleado: las concedidas)
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Accessible(GetActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tienda en cascada (solo admin)
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la tienda"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tienda eliminada con éxito"})
}

// AddEmployee godoc
// @Summary      Dar acceso a un empleado (solo admin, idempotente)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID de la tienda"
// @Param        body  body  dto.AddEmployeeRequest  true  "user_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/employees [post]
func (h *StoreHandler) AddEmployee(c *fiber.Ctx) error {
	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddEmployee(GetActor(c), in.UserID, c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado asignado a la tienda"})
}

// RemoveEmployee godoc
// @Summary      Retirar acceso de un empleado (solo admin)
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string  true  "ID de la tienda"
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200     {object}  dto.MessageResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/employees/{userId} [delete]
func (h *StoreHandler) RemoveEmployee(c *fiber.Ctx) error {
	if err := h.uc.RemoveEmployee(GetActor(c), c.Params("userId"), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleado retirado de la tienda"})
}

// Employees godoc
// @Summary      Listar empleados con acceso a la tienda
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ID de la tienda"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/stores/{id}/employees [get]
func (h *StoreHandler) Employees(c *fiber.Ctx) error {
	out, err := h.uc.Employees(GetActor(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
