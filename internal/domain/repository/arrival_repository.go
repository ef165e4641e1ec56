package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcastano/taller-api/internal/domain/entity"
)

// ArrivalFilter filtros del listado de arribos.
type ArrivalFilter struct {
	SupplierID        string
	ProductID         string
	UnitID            string
	InvoiceNumber     string // subcadena, ILIKE
	Manufacturer      string // subcadena, ILIKE
	Info              string // subcadena, ILIKE
	FromDate          *time.Time
	ToDate            *time.Time
	FromPurchasePrice *decimal.Decimal
	ToPurchasePrice   *decimal.Decimal
	FromRetailPrice   *decimal.Decimal
	ToRetailPrice     *decimal.Decimal
	Status            *entity.ArrivalStatus
}

// ArrivalRepository puerto de persistencia de arribos.
type ArrivalRepository interface {
	Create(arrival *entity.Arrival) error
	GetByID(id string) (*entity.Arrival, error)
	// Update escribe los campos administrativos (factura, fabricante, info,
	// estado). Nunca toca count ni precios: eso reescribiría el historial.
	Update(arrival *entity.Arrival) error
	List(filter ArrivalFilter, limit, offset int) ([]*entity.ArrivalDetail, int, error)
}
