package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventories. El conteo es una
// anotación: no modifica el libro de stock.
type CreateInventoryRequest struct {
	StockID string          `json:"stock_id"`
	Count   decimal.Decimal `json:"count"`
	Date    *time.Time      `json:"date,omitempty"`
	Info    string          `json:"info"`
}

// UpdateInventoryRequest body para PUT /api/inventories/:id.
type UpdateInventoryRequest struct {
	Count  *decimal.Decimal `json:"count,omitempty"`
	Info   *string          `json:"info,omitempty"`
	Status *int             `json:"status,omitempty"`
}

// InventoryResponse conteo de inventario.
type InventoryResponse struct {
	ID          string          `json:"id"`
	StockID     string          `json:"stock_id"`
	ProductName string          `json:"product_name,omitempty"`
	Count       decimal.Decimal `json:"count"`
	Date        time.Time       `json:"date"`
	Info        string          `json:"info"`
	Status      int             `json:"status"`
	StatusName  string          `json:"status_name"`
}
