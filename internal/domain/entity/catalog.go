package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entidades de catálogo. CRUD convencional; ninguna toca el libro de stock.

// Product repuesto o artículo del almacén.
type Product struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier proveedor de repuestos.
type Supplier struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unit unidad de medida (pieza, litro, kg...). Un lote de stock queda atado a
// una única unidad; la mezcla de unidades en un lote es un error de negocio.
type Unit struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Master mecánico que ejecuta el servicio de una venta.
type Master struct {
	ID         string
	Name       string
	Amount     decimal.Decimal // tarifa fija, >= 0
	Percentage decimal.Decimal // comisión sobre la venta, >= 0
	UserID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
