package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLotResponse un lote del libro de stock con nombres resueltos.
type StockLotResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitID       string          `json:"unit_id"`
	UnitName     string          `json:"unit_name,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
