package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los apliques: arribo, devolución, baja y venta contra el ledger.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	st        *memState
	arrivals  *appstock.ArrivalUseCase
	returns   *appstock.ReturnUseCase
	disposals *appstock.DisposalUseCase
	sales     *appstock.SaleUseCase
}

func newFixture() *fixture {
	st := newMemState()
	tx := &memTx{st: st}
	cat := newMemCatalog("p1", "p2", "s1", "s2", "u1", "u2", "m1")
	products := &memProductRepo{cat}
	suppliers := &memSupplierRepo{cat}
	units := &memUnitRepo{cat}
	masters := &memMasterRepo{cat}
	return &fixture{
		st:        st,
		arrivals:  appstock.NewArrivalUseCase(tx, &memArrivalRepo{st: st}, suppliers, products, units),
		returns:   appstock.NewReturnUseCase(tx, &memReturnRepo{st: st}, suppliers, products),
		disposals: appstock.NewDisposalUseCase(tx, &memDisposalRepo{st: st}),
		sales:     appstock.NewSaleUseCase(tx, &memSaleRepo{st: st}, masters),
	}
}

func (f *fixture) lotByKey(t *testing.T, productID, supplierID, price string) *entity.StockLot {
	t.Helper()
	key := stock.ResolveLotKey(productID, supplierID, dec(price))
	for _, lot := range f.st.lots {
		if lot.Key().Equal(key) {
			return lot
		}
	}
	return nil
}

func (f *fixture) arrive(t *testing.T, productID, supplierID, unitID, retail, count string) {
	t.Helper()
	_, err := f.arrivals.Create(context.Background(), "user-1", dto.CreateArrivalRequest{
		SupplierID:    supplierID,
		InvoiceNumber: "F-001",
		Items: []dto.ArrivalItemRequest{{
			ProductID:   productID,
			UnitID:      unitID,
			Count:       dec(count),
			RetailPrice: dec(retail),
		}},
	})
	require.NoError(t, err)
}

// El flujo completo del enunciado clásico: arriban 20, se gasta una devolución
// de 5 y una baja por 20 debe rechazarse porque solo quedan 15.
func TestFlujo_ArriboDevolucionBaja(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "20")
	lot := f.lotByKey(t, "p1", "s1", "100")
	require.NotNil(t, lot)
	require.True(t, lot.Quantity.Equal(dec("20")))

	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)
	_, err = f.returns.Spend(ctx, ret.ID)
	require.NoError(t, err)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("15")))

	_, err = f.disposals.Create(ctx, "user-1", dto.CreateDisposalRequest{
		StockID: lot.ID,
		Count:   dec("20"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("15")),
		"la baja rechazada no debe tocar el saldo")
	assert.Empty(t, f.st.disposals, "la baja rechazada no debe quedar registrada")
}

// Dos gastos concurrentes de la misma devolución: exactamente uno gana y el
// lote se debita una sola vez.
func TestSpend_Concurrente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "100")
	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.returns.Spend(ctx, ret.ID)
		}(i)
	}
	wg.Wait()

	var ok, spent int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, stock.ErrAlreadySpent)
			spent++
		}
	}
	assert.Equal(t, 1, ok, "exactamente un gasto debe ganar")
	assert.Equal(t, 1, spent, "el perdedor debe ver la devolución ya gastada")
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("95")),
		"el débito debe aplicarse exactamente una vez")
}

// Dos devoluciones pendientes distintas de 10 contra un lote de 15, gastadas
// a la vez: una gana, la otra falla por stock insuficiente y el saldo queda
// en 5. Nunca ganan las dos ni el saldo queda negativo.
func TestSpend_ConcurrenteStockInsuficiente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "15")

	rets := make([]*dto.ReturnResponse, 2)
	for i := range rets {
		ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
			ProductID:  "p1",
			SupplierID: "s1",
			Price:      dec("100"),
			Count:      dec("10"),
		})
		require.NoError(t, err)
		rets[i] = ret
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.returns.Spend(ctx, rets[i].ID)
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, stock.ErrInsufficientStock)
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "exactamente un gasto debe ganar")
	assert.Equal(t, 1, insufficient, "el perdedor debe fallar por stock insuficiente")
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("5")),
		"solo el gasto ganador debe debitar el lote")

	var pending, spentCount int
	for _, ret := range rets {
		switch f.st.returns[ret.ID].Status {
		case entity.ReturnStatusPending:
			pending++
		case entity.ReturnStatusSpent:
			spentCount++
		}
	}
	assert.Equal(t, 1, spentCount, "solo la devolución ganadora queda gastada")
	assert.Equal(t, 1, pending, "la perdedora sigue pendiente y puede reintentarse")
}

// Gastar dos veces en secuencia: el segundo gasto falla aunque haya saldo.
func TestSpend_Repetido(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "50")
	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)

	_, err = f.returns.Spend(ctx, ret.ID)
	require.NoError(t, err)
	_, err = f.returns.Spend(ctx, ret.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrAlreadySpent)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("45")))
}

// Gastar una devolución cuyo lote no existe referencia mal el stock.
func TestSpend_LoteInexistente(t *testing.T) {
	f := newFixture()

	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)

	_, err = f.returns.Spend(context.Background(), ret.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrLotNotFound)
	assert.Equal(t, entity.ReturnStatusPending, f.st.returns[ret.ID].Status,
		"el gasto fallido debe dejar la devolución pendiente")
}

// Si el saldo no alcanza, el gasto falla y la devolución sigue pendiente.
func TestSpend_StockInsuficiente(t *testing.T) {
	f := newFixture()

	f.arrive(t, "p1", "s1", "u1", "100", "3")
	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)

	_, err = f.returns.Spend(context.Background(), ret.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("3")))
	assert.Equal(t, entity.ReturnStatusPending, f.st.returns[ret.ID].Status)
}

// Una devolución gastada no se edita ni se borra.
func TestReturn_GastadaEsInmutable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "50")
	ret, err := f.returns.Create("user-1", dto.CreateReturnRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Price:      dec("100"),
		Count:      dec("5"),
	})
	require.NoError(t, err)
	_, err = f.returns.Spend(ctx, ret.ID)
	require.NoError(t, err)

	newCount := dec("9")
	_, err = f.returns.Update(ret.ID, dto.UpdateReturnRequest{Count: &newCount})
	assert.ErrorIs(t, err, stock.ErrAlreadySpent)

	err = f.returns.Delete(ret.ID)
	assert.ErrorIs(t, err, stock.ErrAlreadySpent)
}

// Baja con count cero: acta sin efecto sobre el saldo.
func TestDisposal_CountCeroEsNoOp(t *testing.T) {
	f := newFixture()

	f.arrive(t, "p1", "s1", "u1", "100", "10")
	lot := f.lotByKey(t, "p1", "s1", "100")

	resp, err := f.disposals.Create(context.Background(), "user-1", dto.CreateDisposalRequest{
		StockID: lot.ID,
		Count:   dec("0"),
		Cause:   "conteo de prueba",
	})
	require.NoError(t, err)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("10")),
		"count cero no debe tocar el saldo")
	assert.Len(t, f.st.disposals, 1, "el acta sí queda registrada")
	assert.Equal(t, "p1", resp.ProductID, "el producto se deriva del lote")
}

func TestDisposal_CountNegativoEsInvalido(t *testing.T) {
	f := newFixture()
	f.arrive(t, "p1", "s1", "u1", "100", "10")
	lot := f.lotByKey(t, "p1", "s1", "100")

	_, err := f.disposals.Create(context.Background(), "user-1", dto.CreateDisposalRequest{
		StockID: lot.ID,
		Count:   dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un arribo de varios ítems es atómico: si un ítem choca con la unidad del
// lote, ningún ítem queda acreditado ni registrado.
func TestArrival_LoteAtomico(t *testing.T) {
	f := newFixture()

	f.arrive(t, "p1", "s1", "u1", "100", "10")

	_, err := f.arrivals.Create(context.Background(), "user-1", dto.CreateArrivalRequest{
		SupplierID: "s1",
		Items: []dto.ArrivalItemRequest{
			{ProductID: "p2", UnitID: "u1", Count: dec("5"), RetailPrice: dec("120")},
			// Mismo lote que el arribo anterior pero con otra unidad: rechazo.
			{ProductID: "p1", UnitID: "u2", Count: dec("3"), RetailPrice: dec("100")},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInconsistentUnit)
	assert.Len(t, f.st.arrivals, 1, "solo debe quedar el arribo previo")
	assert.Nil(t, f.lotByKey(t, "p2", "s1", "120"), "el crédito del primer ítem debe revertirse")
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("10")))
}

// Arribos repetidos con la misma clave acumulan sobre el mismo lote.
func TestArrival_MismaClaveAcumula(t *testing.T) {
	f := newFixture()

	f.arrive(t, "p1", "s1", "u1", "100", "10")
	f.arrive(t, "p1", "s1", "u1", "100", "5")

	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("15")))
	assert.Len(t, f.st.arrivals, 2, "cada arribo es un registro histórico propio")
}

// La venta debita todos los lotes o ninguno.
func TestSale_TodoONada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "10")
	f.arrive(t, "p2", "s1", "u1", "200", "1")
	lot1 := f.lotByKey(t, "p1", "s1", "100")
	lot2 := f.lotByKey(t, "p2", "s1", "200")

	_, err := f.sales.Create(ctx, "user-1", dto.CreateSaleRequest{
		CarModel: "Corolla",
		Service:  "cambio de frenos",
		Price:    dec("500"),
		Items: []dto.SaleItemRequest{
			{StockID: lot1.ID, Count: dec("4")},
			{StockID: lot2.ID, Count: dec("5")}, // solo hay 1
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("10")),
		"el débito del primer ítem debe revertirse")
	assert.Empty(t, f.st.sales, "la venta fallida no se persiste")
	assert.Empty(t, f.st.saleItems)
}

func TestSale_DebitaYPersisteItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.arrive(t, "p1", "s1", "u1", "100", "10")
	lot := f.lotByKey(t, "p1", "s1", "100")

	resp, err := f.sales.Create(ctx, "user-1", dto.CreateSaleRequest{
		CarModel: "Corolla",
		MasterID: "m1",
		Service:  "cambio de aceite",
		Price:    dec("300"),
		Items:    []dto.SaleItemRequest{{StockID: lot.ID, Count: dec("4")}},
	})
	require.NoError(t, err)
	assert.True(t, f.lotByKey(t, "p1", "s1", "100").Quantity.Equal(dec("6")))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, lot.ID, resp.Items[0].StockID)

	got, err := f.sales.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 1)
}

// Una venta sin repuestos es solo servicio: válida y sin efecto en stock.
func TestSale_SinItems(t *testing.T) {
	f := newFixture()

	resp, err := f.sales.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CarModel: "Hilux",
		Service:  "diagnóstico",
		Price:    dec("80"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
