package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/dto"
	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// SaleHandler maneja las ventas (protegido).
type SaleHandler struct {
	uc *appstock.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *appstock.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una venta y debitar los lotes consumidos
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta con sus ítems"
// @Success      201   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una venta con sus ítems.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List lista ventas con filtros.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.SaleFilter{
		CarModel:  c.Query("car_model"),
		CarVIN:    c.Query("car_vin"),
		CarNumber: c.Query("car_number"),
		Service:   c.Query("service"),
		MasterID:  c.Query("master_id"),
		ProductID: c.Query("product_id"),
		UserID:    c.Query("user_id"),
		FromDate:  queryTime(c, "from_date"),
		ToDate:    queryTime(c, "to_date"),
		FromPrice: queryDecimal(c, "from_price"),
		ToPrice:   queryDecimal(c, "to_price"),
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
