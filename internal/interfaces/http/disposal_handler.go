package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/dto"
	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// DisposalHandler maneja las bajas de stock (protegido).
type DisposalHandler struct {
	uc *appstock.DisposalUseCase
}

// NewDisposalHandler construye el handler.
func NewDisposalHandler(uc *appstock.DisposalUseCase) *DisposalHandler {
	return &DisposalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una baja y debitar el lote
// @Tags         disposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDisposalRequest  true  "Baja sobre un lote"
// @Success      201   {object}  dto.DisposalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/disposals [post]
func (h *DisposalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDisposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una baja por id.
func (h *DisposalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "baja no encontrada"})
	}
	return c.JSON(out)
}

// List lista bajas con filtros.
func (h *DisposalHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.DisposalFilter{
		ProductID: c.Query("product_id"),
		Cause:     c.Query("cause"),
		FromDate:  queryTime(c, "from_date"),
		ToDate:    queryTime(c, "to_date"),
	}
	items, total, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}
