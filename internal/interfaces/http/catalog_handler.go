package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/application/usecase"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// namedCatalog lo cumplen los casos de uso de producto, proveedor y unidad:
// catálogos de solo nombre con la misma forma de CRUD.
type namedCatalog interface {
	Create(userID string, in dto.NamedRequest) (*dto.NamedResponse, error)
	GetByID(id string) (*dto.NamedResponse, error)
	Update(id string, in dto.NamedRequest) (*dto.NamedResponse, error)
	List(filter repository.NameFilter, limit, offset int) ([]dto.NamedResponse, int, error)
}

// CatalogHandler maneja un catálogo de solo nombre (protegido).
type CatalogHandler struct {
	uc       namedCatalog
	notFound string
}

// NewCatalogHandler construye el handler. notFound es el mensaje del 404.
func NewCatalogHandler(uc namedCatalog, notFound string) *CatalogHandler {
	return &CatalogHandler{uc: uc, notFound: notFound}
}

// Create crea una entrada del catálogo.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una entrada por id.
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.notFound})
	}
	return c.JSON(out)
}

// Update renombra una entrada.
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.notFound})
	}
	return c.JSON(out)
}

// List lista el catálogo filtrando por subcadena del nombre.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, total, err := h.uc.List(repository.NameFilter{Name: c.Query("name")}, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}

// MasterHandler maneja el catálogo de mecánicos (protegido).
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

// Create crea un mecánico.
func (h *MasterHandler) Create(c *fiber.Ctx) error {
	var in dto.MasterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un mecánico por id.
func (h *MasterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mecánico no encontrado"})
	}
	return c.JSON(out)
}

// Update modifica un mecánico.
func (h *MasterHandler) Update(c *fiber.Ctx) error {
	var in dto.MasterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mecánico no encontrado"})
	}
	return c.JSON(out)
}

// List lista mecánicos.
func (h *MasterHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, total, err := h.uc.List(repository.NameFilter{Name: c.Query("name")}, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}

// pageParams lee limit/offset de la query con defaults y tope.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p.Limit, p.Offset
}
