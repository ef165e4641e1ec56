package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// handleError traduce errores de dominio a respuestas HTTP. Los errores del
// libro de stock llevan además la identidad del lote ofendido para que el
// cliente pueda señalarlo.
func handleError(c *fiber.Ctx, err error) error {
	var stockErr *stock.Error
	if errors.As(err, &stockErr) {
		status, code := stockStatus(stockErr.Kind)
		resp := dto.ErrorResponse{Code: code, Message: stockErr.Error(), Lot: lotInfo(stockErr)}
		return c.Status(status).JSON(resp)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrLoginAlreadyExists),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func stockStatus(kind error) (int, string) {
	switch {
	case errors.Is(kind, stock.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(kind, stock.ErrAlreadySpent):
		return fiber.StatusConflict, "ALREADY_SPENT"
	case errors.Is(kind, stock.ErrUnknownLot):
		return fiber.StatusUnprocessableEntity, "UNKNOWN_LOT"
	case errors.Is(kind, stock.ErrInconsistentUnit):
		return fiber.StatusUnprocessableEntity, "INCONSISTENT_UNIT"
	case errors.Is(kind, stock.ErrLotNotFound):
		return fiber.StatusNotFound, "LOT_NOT_FOUND"
	}
	return fiber.StatusUnprocessableEntity, "STOCK_ERROR"
}

func lotInfo(err *stock.Error) *dto.LotErrorInfo {
	info := &dto.LotErrorInfo{LotID: err.LotID}
	if err.Key.ProductID != "" || err.Key.SupplierID != "" {
		info.ProductID = err.Key.ProductID
		info.SupplierID = err.Key.SupplierID
		info.Price = err.Key.Price.StringFixed(stock.PricePrecision)
	}
	return info
}
