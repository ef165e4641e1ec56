package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcastano/taller-api/internal/domain/entity"
)

// SaleFilter filtros del listado de ventas.
type SaleFilter struct {
	CarModel  string // subcadena, ILIKE
	CarVIN    string // subcadena, ILIKE
	CarNumber string // subcadena, ILIKE
	Service   string // subcadena, ILIKE
	MasterID  string
	ProductID string // ventas que consumieron algún lote de este producto
	UserID    string
	FromDate  *time.Time
	ToDate    *time.Time
	FromPrice *decimal.Decimal
	ToPrice   *decimal.Decimal
}

// SaleRepository puerto de persistencia de ventas.
type SaleRepository interface {
	// Create inserta la venta sin sus ítems; los ítems van por AddItem dentro
	// de la misma transacción.
	Create(sale *entity.Sale) error
	AddItem(item *entity.SaleItem) error
	// GetByID devuelve la venta con sus ítems. nil, nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter, limit, offset int) ([]*entity.SaleDetail, int, error)
}
