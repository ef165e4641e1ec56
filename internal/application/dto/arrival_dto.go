package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArrivalItemRequest ítem de un arribo (una línea de la factura del proveedor).
type ArrivalItemRequest struct {
	ProductID     string          `json:"product_id"`
	UnitID        string          `json:"unit_id"`
	Count         decimal.Decimal `json:"count"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	RetailPrice   decimal.Decimal `json:"retail_price"`
	Manufacturer  string          `json:"manufacturer"`
	Info          string          `json:"info"`
}

// CreateArrivalRequest body para POST /api/arrivals. Todos los ítems se
// registran y acreditan en una sola transacción: si uno falla, no queda nada.
type CreateArrivalRequest struct {
	SupplierID    string               `json:"supplier_id"`
	InvoiceNumber string               `json:"invoice_number"`
	Date          *time.Time           `json:"date,omitempty"`
	Items         []ArrivalItemRequest `json:"items"`
}

// UpdateArrivalRequest body para PUT /api/arrivals/:id. Solo campos
// administrativos; count y precios son historia inmutable.
type UpdateArrivalRequest struct {
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	Manufacturer  *string `json:"manufacturer,omitempty"`
	Info          *string `json:"info,omitempty"`
	Status        *int    `json:"status,omitempty"`
}

// ArrivalResponse arribo con nombres resueltos.
type ArrivalResponse struct {
	ID            string          `json:"id"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          time.Time       `json:"date"`
	Manufacturer  string          `json:"manufacturer"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Count         decimal.Decimal `json:"count"`
	UnitID        string          `json:"unit_id"`
	UnitName      string          `json:"unit_name,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	RetailPrice   decimal.Decimal `json:"retail_price"`
	Info          string          `json:"info"`
	Status        int             `json:"status"`
	StatusName    string          `json:"status_name"`
}
