package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/application/usecase"
)

// WhitelistHandler maneja los emails pre-aprobados para registro.
type WhitelistHandler struct {
	uc *usecase.WhitelistUseCase
}

// NewWhitelistHandler construye el handler de la whitelist.
func NewWhitelistHandler(uc *usecase.WhitelistUseCase) *WhitelistHandler {
	return &WhitelistHandler{uc: uc}
}

// Add godoc
// @Summary      Pre-aprobar un email (solo admin)
// @Tags         whitelist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddWhitelistRequest  true  "email"
// @Success      201   {object}  dto.WhitelistEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/whitelist [post]
func (h *WhitelistHandler) Add(c *fiber.Ctx) error {
	var in dto.AddWhitelistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(GetActor(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar emails pre-aprobados (solo admin)
// @Tags         whitelist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.WhitelistEntryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/whitelist [get]
func (h *WhitelistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar entrada de la whitelist (solo admin)
// @Tags         whitelist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/whitelist/{id} [delete]
func (h *WhitelistHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetActor(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "email retirado de la whitelist"})
}
