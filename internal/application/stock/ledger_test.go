package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ledger: la única puerta de escritura sobre la cantidad de un lote.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedLot(st *memState, id, productID, supplierID, price, qty, unitID string) {
	st.lots[id] = &entity.StockLot{
		ID:         id,
		ProductID:  productID,
		SupplierID: supplierID,
		Price:      dec(price),
		Quantity:   dec(qty),
		UnitID:     unitID,
	}
}

func TestApplyDelta_CreditoCreaLote(t *testing.T) {
	st := newMemState()
	lots := &memLotRepo{st: st}
	key := stock.ResolveLotKey("p1", "s1", dec("100"))

	qty, err := appstock.ApplyDelta(lots, key, "u1", dec("20"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(dec("20")), "el lote nuevo debe nacer con el delta completo")

	lot, err := lots.GetByKey(key)
	require.NoError(t, err)
	require.NotNil(t, lot, "el crédito sobre clave inexistente debe crear el lote")
	assert.Equal(t, "u1", lot.UnitID)
}

func TestApplyDelta_CreditoAcumulaSobreLoteExistente(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	qty, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100")), "u1", dec("7"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(dec("12")))
}

func TestApplyDelta_PrecioDistintoEsOtroLote(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	// Mismo producto y proveedor pero otro precio: lote distinto.
	qty, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("120")), "u1", dec("3"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(dec("3")))
	assert.Len(t, st.lots, 2, "deben coexistir dos lotes con precios distintos")
}

func TestApplyDelta_PrecioEquivalenteEsElMismoLote(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	// 100 y 100.00 son el mismo precio, por lo tanto el mismo lote.
	qty, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100.00")), "u1", dec("1"))
	require.NoError(t, err)
	assert.True(t, qty.Equal(dec("6")))
	assert.Len(t, st.lots, 1)
}

func TestApplyDelta_DebitoContraLoteInexistente(t *testing.T) {
	st := newMemState()
	lots := &memLotRepo{st: st}

	_, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100")), "", dec("-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrUnknownLot)
	assert.Empty(t, st.lots, "el error no debe dejar lote creado")
}

func TestApplyDelta_StockInsuficiente(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	_, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100")), "", dec("-6"))
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.True(t, st.lots["lote-1"].Quantity.Equal(dec("5")),
		"el débito rechazado no debe recortar ni tocar la cantidad")
}

func TestApplyDelta_DebitoHastaCeroEsValido(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	qty, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100")), "", dec("-5"))
	require.NoError(t, err)
	assert.True(t, qty.IsZero(), "vaciar el lote por completo es legal")
	assert.Len(t, st.lots, 1, "el lote vacío no se borra")
}

func TestApplyDelta_UnidadInconsistente(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	_, err := appstock.ApplyDelta(lots, stock.ResolveLotKey("p1", "s1", dec("100")), "u2", dec("3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInconsistentUnit)
	assert.True(t, st.lots["lote-1"].Quantity.Equal(dec("5")))
}

func TestApplyDelta_ErrorIdentificaElLote(t *testing.T) {
	st := newMemState()
	lots := &memLotRepo{st: st}
	key := stock.ResolveLotKey("p1", "s1", dec("100"))

	_, err := appstock.ApplyDelta(lots, key, "", dec("-1"))
	var stockErr *stock.Error
	require.ErrorAs(t, err, &stockErr)
	assert.True(t, stockErr.Key.Equal(key), "el error debe llevar la clave del lote ofendido")
}

func TestApplyDeltaByID_LoteInexistente(t *testing.T) {
	st := newMemState()
	lots := &memLotRepo{st: st}

	_, err := appstock.ApplyDeltaByID(lots, "no-existe", dec("-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrLotNotFound)
}

func TestApplyDeltaByID_DeltaCeroNoEscribe(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	lot, err := appstock.ApplyDeltaByID(lots, "lote-1", decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.True(t, st.lots["lote-1"].Quantity.Equal(dec("5")))
	assert.True(t, st.lots["lote-1"].UpdatedAt.IsZero(),
		"delta cero no debe escribir nada, ni siquiera updated_at")
}

func TestApplyDeltaByID_Debito(t *testing.T) {
	st := newMemState()
	seedLot(st, "lote-1", "p1", "s1", "100", "5", "u1")
	lots := &memLotRepo{st: st}

	lot, err := appstock.ApplyDeltaByID(lots, "lote-1", dec("-2"))
	require.NoError(t, err)
	assert.True(t, lot.Quantity.Equal(dec("3")))
	assert.Equal(t, "p1", lot.ProductID, "el lote devuelto permite derivar el producto sin otra consulta")
}
