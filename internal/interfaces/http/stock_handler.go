package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/application/usecase"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// StockHandler consultas del libro de stock (protegido). Solo lectura: las
// escrituras entran por arribos, devoluciones, bajas y ventas.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar lotes de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  string  false  "Filtrar por producto"
// @Param        supplier_id    query  string  false  "Filtrar por proveedor"
// @Param        product_name   query  string  false  "Subcadena del producto"
// @Param        supplier_name  query  string  false  "Subcadena del proveedor"
// @Param        all            query  bool    false  "Incluir lotes vacíos"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, total, err := h.uc.List(stockFilter(c), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}

// Report genera el PDF de valorización del stock según el filtro.
func (h *StockHandler) Report(c *fiber.Ctx) error {
	doc, err := h.uc.Report(stockFilter(c))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(doc)
}

func stockFilter(c *fiber.Ctx) repository.StockLotFilter {
	return repository.StockLotFilter{
		ProductID:    c.Query("product_id"),
		SupplierID:   c.Query("supplier_id"),
		ProductName:  c.Query("product_name"),
		SupplierName: c.Query("supplier_name"),
		// Por defecto solo lotes con saldo; all=true incluye los vacíos.
		OnlyAvailable: !c.QueryBool("all", false),
	}
}
