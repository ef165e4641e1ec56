package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcastano/taller-api/internal/domain/stock"
)

// StockLot línea del libro de stock: cantidad disponible de un producto, de un
// proveedor, a un precio de venta fijo. Invariante: Quantity >= 0 siempre.
// Un lote con cantidad 0 queda vacío pero no se borra; un arribo posterior
// con la misma clave lo repone.
type StockLot struct {
	ID         string
	ProductID  string
	SupplierID string
	Price      decimal.Decimal
	Quantity   decimal.Decimal
	UnitID     string
	UpdatedAt  time.Time
}

// Key devuelve la clave de identidad del lote.
func (s *StockLot) Key() stock.LotKey {
	return stock.ResolveLotKey(s.ProductID, s.SupplierID, s.Price)
}

// StockLotDetail lote con los nombres resueltos para listados.
type StockLotDetail struct {
	StockLot
	ProductName  string
	SupplierName string
	UnitName     string
}
