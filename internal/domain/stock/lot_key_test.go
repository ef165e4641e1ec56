package stock_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/taller-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LotKey
// ──────────────────────────────────────────────────────────────────────────────

// La clave normaliza el precio a 2 decimales: 100, 100.0 y 100.00 son el mismo lote.
func TestResolveLotKey_NormalizaPrecio(t *testing.T) {
	a := stock.ResolveLotKey("p1", "s1", dec("100"))
	b := stock.ResolveLotKey("p1", "s1", dec("100.00"))
	c := stock.ResolveLotKey("p1", "s1", dec("100.0"))

	assert.True(t, a.Equal(b), "100 y 100.00 deben resolver al mismo lote")
	assert.True(t, a.Equal(c), "100 y 100.0 deben resolver al mismo lote")
}

// Un centavo de diferencia es otro lote.
func TestResolveLotKey_PrecioDistintoEsOtraClave(t *testing.T) {
	a := stock.ResolveLotKey("p1", "s1", dec("100.00"))
	b := stock.ResolveLotKey("p1", "s1", dec("100.01"))

	assert.False(t, a.Equal(b), "precios distintos deben resolver a lotes distintos")
}

// Las tres componentes participan en la identidad.
func TestLotKey_Equal_TodasLasComponentes(t *testing.T) {
	base := stock.ResolveLotKey("p1", "s1", dec("10.00"))

	assert.False(t, base.Equal(stock.ResolveLotKey("p2", "s1", dec("10.00"))),
		"producto distinto debe ser otro lote")
	assert.False(t, base.Equal(stock.ResolveLotKey("p1", "s2", dec("10.00"))),
		"proveedor distinto debe ser otro lote")
}

// El precio se redondea a la precisión de la base antes de comparar.
func TestResolveLotKey_RedondeaExceso(t *testing.T) {
	a := stock.ResolveLotKey("p1", "s1", dec("10.005"))
	b := stock.ResolveLotKey("p1", "s1", dec("10.01"))

	assert.True(t, a.Equal(b), "10.005 debe redondear a 10.01")
	assert.Equal(t, "10.01", a.Price.StringFixed(stock.PricePrecision))
}

func TestLotKey_String(t *testing.T) {
	k := stock.ResolveLotKey("p1", "s1", dec("5"))
	assert.Equal(t, "producto=p1 proveedor=s1 precio=5.00", k.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Error
// ──────────────────────────────────────────────────────────────────────────────

// El error estructurado debe responder a errors.Is contra su centinela.
func TestError_UnwrapCentinela(t *testing.T) {
	key := stock.ResolveLotKey("p1", "s1", dec("10"))
	err := stock.NewError(stock.ErrInsufficientStock, key)

	require.Error(t, err)
	assert.True(t, errors.Is(err, stock.ErrInsufficientStock))
	assert.False(t, errors.Is(err, stock.ErrUnknownLot))
}

// errors.As debe recuperar la clave del lote afectado.
func TestError_AsRecuperaClave(t *testing.T) {
	key := stock.ResolveLotKey("p1", "s1", dec("10"))
	wrapped := stock.NewError(stock.ErrUnknownLot, key)

	var stockErr *stock.Error
	require.True(t, errors.As(wrapped, &stockErr))
	assert.True(t, key.Equal(stockErr.Key))
	assert.Contains(t, stockErr.Error(), "producto=p1")
}

// Cuando solo se conoce el id de fila, el mensaje lo incluye.
func TestError_PorID(t *testing.T) {
	err := stock.NewErrorByID(stock.ErrLotNotFound, "abc-123")

	assert.True(t, errors.Is(err, stock.ErrLotNotFound))
	assert.Contains(t, err.Error(), "abc-123")
}
