package stock_test

import (
	"context"
	"sync"

	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
	"github.com/dcastano/taller-api/internal/domain/stock"

	appstock "github.com/dcastano/taller-api/internal/application/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria. Simulan la semántica transaccional de Postgres que los
// casos de uso asumen: un mutex global hace de SELECT FOR UPDATE (las
// transacciones se serializan) y un snapshot del estado hace de ROLLBACK.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	lots      map[string]*entity.StockLot
	arrivals  map[string]*entity.Arrival
	returns   map[string]*entity.ProductReturn
	disposals map[string]*entity.Disposal
	sales     map[string]*entity.Sale
	saleItems []entity.SaleItem
}

func newMemState() *memState {
	return &memState{
		lots:      map[string]*entity.StockLot{},
		arrivals:  map[string]*entity.Arrival{},
		returns:   map[string]*entity.ProductReturn{},
		disposals: map[string]*entity.Disposal{},
		sales:     map[string]*entity.Sale{},
	}
}

func (s *memState) snapshot() *memState {
	c := newMemState()
	for k, v := range s.lots {
		cp := *v
		c.lots[k] = &cp
	}
	for k, v := range s.arrivals {
		cp := *v
		c.arrivals[k] = &cp
	}
	for k, v := range s.returns {
		cp := *v
		c.returns[k] = &cp
	}
	for k, v := range s.disposals {
		cp := *v
		c.disposals[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	c.saleItems = append(c.saleItems, s.saleItems...)
	return c
}

func (s *memState) restore(from *memState) {
	s.lots = from.lots
	s.arrivals = from.arrivals
	s.returns = from.returns
	s.disposals = from.disposals
	s.sales = from.sales
	s.saleItems = from.saleItems
}

// memTx serializa las "transacciones" con un mutex y revierte el estado si fn
// devuelve error.
type memTx struct {
	mu sync.Mutex
	st *memState
}

func (t *memTx) Run(_ context.Context, fn func(repos appstock.TxRepos) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.st.snapshot()
	err := fn(appstock.TxRepos{
		Arrivals:  &memArrivalRepo{st: t.st},
		Returns:   &memReturnRepo{st: t.st},
		Disposals: &memDisposalRepo{st: t.st},
		Sales:     &memSaleRepo{st: t.st},
		Lots:      &memLotRepo{st: t.st},
	})
	if err != nil {
		t.st.restore(snap)
	}
	return err
}

// memLotRepo devuelve copias y escribe por id, como un repo real.
type memLotRepo struct{ st *memState }

func (r *memLotRepo) GetByKey(key stock.LotKey) (*entity.StockLot, error) {
	for _, lot := range r.st.lots {
		if lot.Key().Equal(key) {
			cp := *lot
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLotRepo) GetByKeyForUpdate(key stock.LotKey) (*entity.StockLot, error) {
	return r.GetByKey(key)
}

func (r *memLotRepo) GetByIDForUpdate(id string) (*entity.StockLot, error) {
	lot, ok := r.st.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

func (r *memLotRepo) Create(lot *entity.StockLot) error {
	for _, existing := range r.st.lots {
		if existing.Key().Equal(lot.Key()) {
			return domain.ErrConflict
		}
	}
	cp := *lot
	r.st.lots[lot.ID] = &cp
	return nil
}

func (r *memLotRepo) Save(lot *entity.StockLot) error {
	cp := *lot
	r.st.lots[lot.ID] = &cp
	return nil
}

func (r *memLotRepo) List(_ repository.StockLotFilter, _, _ int) ([]*entity.StockLotDetail, int, error) {
	out := make([]*entity.StockLotDetail, 0, len(r.st.lots))
	for _, lot := range r.st.lots {
		out = append(out, &entity.StockLotDetail{StockLot: *lot})
	}
	return out, len(out), nil
}

type memArrivalRepo struct{ st *memState }

func (r *memArrivalRepo) Create(a *entity.Arrival) error {
	cp := *a
	r.st.arrivals[a.ID] = &cp
	return nil
}

func (r *memArrivalRepo) GetByID(id string) (*entity.Arrival, error) {
	a, ok := r.st.arrivals[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memArrivalRepo) Update(a *entity.Arrival) error {
	cp := *a
	r.st.arrivals[a.ID] = &cp
	return nil
}

func (r *memArrivalRepo) List(_ repository.ArrivalFilter, _, _ int) ([]*entity.ArrivalDetail, int, error) {
	return nil, 0, nil
}

type memReturnRepo struct{ st *memState }

func (r *memReturnRepo) Create(ret *entity.ProductReturn) error {
	cp := *ret
	r.st.returns[ret.ID] = &cp
	return nil
}

func (r *memReturnRepo) GetByID(id string) (*entity.ProductReturn, error) {
	ret, ok := r.st.returns[id]
	if !ok {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *memReturnRepo) GetByIDForUpdate(id string) (*entity.ProductReturn, error) {
	return r.GetByID(id)
}

func (r *memReturnRepo) Update(ret *entity.ProductReturn) error {
	cp := *ret
	r.st.returns[ret.ID] = &cp
	return nil
}

func (r *memReturnRepo) SetStatus(id string, status entity.ReturnStatus) error {
	ret, ok := r.st.returns[id]
	if !ok {
		return domain.ErrNotFound
	}
	ret.Status = status
	return nil
}

func (r *memReturnRepo) Delete(id string) error {
	delete(r.st.returns, id)
	return nil
}

func (r *memReturnRepo) List(_ repository.ProductReturnFilter, _, _ int) ([]*entity.ProductReturnDetail, int, error) {
	return nil, 0, nil
}

type memDisposalRepo struct{ st *memState }

func (r *memDisposalRepo) Create(d *entity.Disposal) error {
	cp := *d
	r.st.disposals[d.ID] = &cp
	return nil
}

func (r *memDisposalRepo) GetByID(id string) (*entity.Disposal, error) {
	d, ok := r.st.disposals[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDisposalRepo) List(_ repository.DisposalFilter, _, _ int) ([]*entity.DisposalDetail, int, error) {
	return nil, 0, nil
}

type memSaleRepo struct{ st *memState }

func (r *memSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	cp.Items = nil
	r.st.sales[s.ID] = &cp
	return nil
}

func (r *memSaleRepo) AddItem(item *entity.SaleItem) error {
	r.st.saleItems = append(r.st.saleItems, *item)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	for _, it := range r.st.saleItems {
		if it.SaleID == id {
			cp.Items = append(cp.Items, it)
		}
	}
	return &cp, nil
}

func (r *memSaleRepo) List(_ repository.SaleFilter, _, _ int) ([]*entity.SaleDetail, int, error) {
	return nil, 0, nil
}

// memCatalog catálogo mínimo: existe todo id que esté en el set.
type memCatalog struct{ ids map[string]bool }

func newMemCatalog(ids ...string) *memCatalog {
	m := &memCatalog{ids: map[string]bool{}}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (c *memCatalog) has(id string) bool { return c.ids[id] }

type memProductRepo struct{ *memCatalog }

func (r *memProductRepo) Create(*entity.Product) error { return nil }
func (r *memProductRepo) Update(*entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if !r.has(id) {
		return nil, nil
	}
	return &entity.Product{ID: id, Name: "producto " + id}, nil
}
func (r *memProductRepo) List(repository.NameFilter, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

type memSupplierRepo struct{ *memCatalog }

func (r *memSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if !r.has(id) {
		return nil, nil
	}
	return &entity.Supplier{ID: id, Name: "proveedor " + id}, nil
}
func (r *memSupplierRepo) List(repository.NameFilter, int, int) ([]*entity.Supplier, int, error) {
	return nil, 0, nil
}

type memUnitRepo struct{ *memCatalog }

func (r *memUnitRepo) Create(*entity.Unit) error { return nil }
func (r *memUnitRepo) Update(*entity.Unit) error { return nil }
func (r *memUnitRepo) GetByID(id string) (*entity.Unit, error) {
	if !r.has(id) {
		return nil, nil
	}
	return &entity.Unit{ID: id, Name: "unidad " + id}, nil
}
func (r *memUnitRepo) List(repository.NameFilter, int, int) ([]*entity.Unit, int, error) {
	return nil, 0, nil
}

type memMasterRepo struct{ *memCatalog }

func (r *memMasterRepo) Create(*entity.Master) error { return nil }
func (r *memMasterRepo) Update(*entity.Master) error { return nil }
func (r *memMasterRepo) GetByID(id string) (*entity.Master, error) {
	if !r.has(id) {
		return nil, nil
	}
	return &entity.Master{ID: id, Name: "mecánico " + id}, nil
}
func (r *memMasterRepo) List(repository.NameFilter, int, int) ([]*entity.Master, int, error) {
	return nil, 0, nil
}
