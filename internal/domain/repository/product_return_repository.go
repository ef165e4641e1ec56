package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcastano/taller-api/internal/domain/entity"
)

// ProductReturnFilter filtros del listado de devoluciones.
type ProductReturnFilter struct {
	SupplierID string
	ProductID  string
	FromDate   *time.Time
	ToDate     *time.Time
	FromPrice  *decimal.Decimal
	ToPrice    *decimal.Decimal
	Status     *entity.ReturnStatus
}

// ProductReturnRepository puerto de persistencia de devoluciones a proveedor.
type ProductReturnRepository interface {
	Create(ret *entity.ProductReturn) error
	GetByID(id string) (*entity.ProductReturn, error)
	// GetByIDForUpdate bloquea la fila de la devolución durante el gasto para
	// que dos spend concurrentes del mismo id se serialicen.
	GetByIDForUpdate(id string) (*entity.ProductReturn, error)
	// Update escribe los campos editables mientras la devolución está pending.
	Update(ret *entity.ProductReturn) error
	// SetStatus escribe solo el estado.
	SetStatus(id string, status entity.ReturnStatus) error
	// Delete elimina la devolución. El caso de uso solo lo permite en pending.
	Delete(id string) error
	List(filter ProductReturnFilter, limit, offset int) ([]*entity.ProductReturnDetail, int, error)
}
