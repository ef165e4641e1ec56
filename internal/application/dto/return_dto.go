package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReturnRequest body para POST /api/returns. La devolución nace
// pendiente; el stock no se toca hasta gastarla.
type CreateReturnRequest struct {
	ProductID     string          `json:"product_id"`
	SupplierID    string          `json:"supplier_id"`
	Price         decimal.Decimal `json:"price"`
	Count         decimal.Decimal `json:"count"`
	Date          *time.Time      `json:"date,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
}

// UpdateReturnRequest body para PUT /api/returns/:id. Solo mientras está
// pendiente.
type UpdateReturnRequest struct {
	Count         *decimal.Decimal `json:"count,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
}

// ReturnResponse devolución con nombres resueltos.
type ReturnResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Count         decimal.Decimal `json:"count"`
	Date          time.Time       `json:"date"`
	InvoiceNumber string          `json:"invoice_number"`
	Status        int             `json:"status"`
	StatusName    string          `json:"status_name"`
	UserLogin     string          `json:"user_login,omitempty"`
}
