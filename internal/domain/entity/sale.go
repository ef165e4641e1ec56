package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de servicio con repuestos. Cada ítem referencia un lote de stock
// y la cantidad consumida de ese lote; la creación debita todos los lotes en
// una sola transacción (todo o nada).
type Sale struct {
	ID        string
	Date      time.Time
	CarModel  string
	CarVIN    string
	CarNumber string
	MasterID  string
	Service   string
	Price     decimal.Decimal
	UserID    string
	CreatedAt time.Time
	Items     []SaleItem
}

// SaleItem consumo de un lote dentro de una venta.
type SaleItem struct {
	SaleID  string
	StockID string
	Count   decimal.Decimal
}

// SaleDetail venta con nombres resueltos para listados.
type SaleDetail struct {
	Sale
	MasterName string
	UserLogin  string
}
