package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDisposalRequest body para POST /api/disposals. El lote se identifica
// por stock_id; el débito y el registro ocurren en la misma transacción.
type CreateDisposalRequest struct {
	StockID string          `json:"stock_id"`
	Count   decimal.Decimal `json:"count"`
	Date    *time.Time      `json:"date,omitempty"`
	Cause   string          `json:"cause"`
}

// DisposalResponse baja registrada.
type DisposalResponse struct {
	ID          string          `json:"id"`
	StockID     string          `json:"stock_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Count       decimal.Decimal `json:"count"`
	Date        time.Time       `json:"date"`
	Cause       string          `json:"cause"`
	UserLogin   string          `json:"user_login,omitempty"`
}
