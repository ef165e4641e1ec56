package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/dto"
	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// ArrivalHandler maneja los arribos de mercadería (protegido).
type ArrivalHandler struct {
	uc *appstock.ArrivalUseCase
}

// NewArrivalHandler construye el handler.
func NewArrivalHandler(uc *appstock.ArrivalUseCase) *ArrivalHandler {
	return &ArrivalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un arribo y acreditar el stock
// @Tags         arrivals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArrivalRequest  true  "Arribo con sus ítems"
// @Success      201   {array}   dto.ArrivalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/arrivals [post]
func (h *ArrivalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArrivalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un arribo por id.
func (h *ArrivalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arribo no encontrado"})
	}
	return c.JSON(out)
}

// Update modifica los campos administrativos de un arribo.
func (h *ArrivalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArrivalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "arribo no encontrado"})
	}
	return c.JSON(out)
}

// List lista arribos con filtros.
func (h *ArrivalHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.ArrivalFilter{
		SupplierID:        c.Query("supplier_id"),
		ProductID:         c.Query("product_id"),
		UnitID:            c.Query("unit_id"),
		InvoiceNumber:     c.Query("invoice_number"),
		Manufacturer:      c.Query("manufacturer"),
		Info:              c.Query("info"),
		FromDate:          queryTime(c, "from_date"),
		ToDate:            queryTime(c, "to_date"),
		FromPurchasePrice: queryDecimal(c, "from_purchase_price"),
		ToPurchasePrice:   queryDecimal(c, "to_purchase_price"),
		FromRetailPrice:   queryDecimal(c, "from_retail_price"),
		ToRetailPrice:     queryDecimal(c, "to_retail_price"),
	}
	if s := queryIntPtr(c, "status"); s != nil {
		status := entity.ArrivalStatus(*s)
		filter.Status = &status
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
