package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Helpers de parsing de query params opcionales. Un valor ausente o mal
// formado se ignora: los filtros son de mejor esfuerzo, no validación.

// queryTime lee una fecha RFC3339 o YYYY-MM-DD.
func queryTime(c *fiber.Ctx, key string) *time.Time {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// queryDecimal lee un decimal.
func queryDecimal(c *fiber.Ctx, key string) *decimal.Decimal {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// queryIntPtr lee un entero opcional (para estados).
func queryIntPtr(c *fiber.Ctx, key string) *int {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
