package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest consumo de un lote dentro de la venta.
type SaleItemRequest struct {
	StockID string          `json:"stock_id"`
	Count   decimal.Decimal `json:"count"`
}

// CreateSaleRequest body para POST /api/sales. Cada ítem debita su lote; si
// algún lote no alcanza, la venta entera se rechaza y el stock queda intacto.
type CreateSaleRequest struct {
	Date      *time.Time        `json:"date,omitempty"`
	CarModel  string            `json:"car_model"`
	CarVIN    string            `json:"car_vin"`
	CarNumber string            `json:"car_number"`
	MasterID  string            `json:"master_id,omitempty"`
	Service   string            `json:"service"`
	Price     decimal.Decimal   `json:"price"`
	Items     []SaleItemRequest `json:"items"`
}

// SaleItemResponse ítem de venta en respuestas.
type SaleItemResponse struct {
	StockID string          `json:"stock_id"`
	Count   decimal.Decimal `json:"count"`
}

// SaleResponse venta con sus ítems.
type SaleResponse struct {
	ID         string             `json:"id"`
	Date       time.Time          `json:"date"`
	CarModel   string             `json:"car_model"`
	CarVIN     string             `json:"car_vin"`
	CarNumber  string             `json:"car_number"`
	MasterID   string             `json:"master_id,omitempty"`
	MasterName string             `json:"master_name,omitempty"`
	Service    string             `json:"service"`
	Price      decimal.Decimal    `json:"price"`
	UserLogin  string             `json:"user_login,omitempty"`
	Items      []SaleItemResponse `json:"items,omitempty"`
}
