package repository

import (
	"time"

	"github.com/dcastano/taller-api/internal/domain/entity"
)

// DisposalFilter filtros del listado de bajas.
type DisposalFilter struct {
	ProductID string
	Cause     string // subcadena, ILIKE
	FromDate  *time.Time
	ToDate    *time.Time
}

// DisposalRepository puerto de persistencia de bajas de stock.
type DisposalRepository interface {
	Create(disposal *entity.Disposal) error
	GetByID(id string) (*entity.Disposal, error)
	List(filter DisposalFilter, limit, offset int) ([]*entity.DisposalDetail, int, error)
}
