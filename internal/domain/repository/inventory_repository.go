package repository

import (
	"time"

	"github.com/dcastano/taller-api/internal/domain/entity"
)

// InventoryFilter filtros del listado de actas de inventario.
type InventoryFilter struct {
	StockID  string
	Info     string // subcadena, ILIKE
	Status   *entity.InventoryStatus
	FromDate *time.Time
	ToDate   *time.Time
}

// InventoryRepository puerto de persistencia de actas de inventario.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	List(filter InventoryFilter, limit, offset int) ([]*entity.InventoryDetail, int, error)
}
