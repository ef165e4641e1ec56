package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Requests y responses de los catálogos (producto, proveedor, unidad, mecánico).

// NamedRequest body de creación/actualización para catálogos con solo nombre.
type NamedRequest struct {
	Name string `json:"name"`
}

// NamedResponse respuesta de catálogos con solo nombre.
type NamedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MasterRequest body de creación/actualización de mecánicos.
type MasterRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MasterResponse mecánico con tarifa y comisión.
type MasterResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	CreatedAt  time.Time       `json:"created_at"`
}
