package repository

import (
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// StockLotFilter filtros del listado de stock.
type StockLotFilter struct {
	ProductID    string
	SupplierID   string
	ProductName  string // subcadena, ILIKE
	SupplierName string // subcadena, ILIKE
	// OnlyAvailable limita a lotes con cantidad > 0 (default en el listado).
	OnlyAvailable bool
}

// StockLotRepository puerto del libro de stock. La cantidad de un lote solo se
// escribe a través del ledger (ApplyDelta); ningún otro código la toca.
type StockLotRepository interface {
	// GetByKey devuelve nil, nil si no hay lote para la clave.
	GetByKey(key stock.LotKey) (*entity.StockLot, error)
	// GetByKeyForUpdate igual que GetByKey pero bloquea la fila (SELECT FOR UPDATE).
	GetByKeyForUpdate(key stock.LotKey) (*entity.StockLot, error)
	// GetByIDForUpdate resuelve por id de fila y bloquea. nil, nil si no existe.
	GetByIDForUpdate(id string) (*entity.StockLot, error)
	// Create inserta un lote nuevo. La unicidad de (product, supplier, price)
	// está respaldada por índice único; una violación se mapea a domain.ErrConflict.
	Create(lot *entity.StockLot) error
	// Save escribe la cantidad (y unidad) de un lote existente.
	Save(lot *entity.StockLot) error
	// List devuelve lotes con nombres resueltos y el total del filtro.
	List(filter StockLotFilter, limit, offset int) ([]*entity.StockLotDetail, int, error)
}
