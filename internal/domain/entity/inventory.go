package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatus estado de un acta de inventario.
type InventoryStatus int

const (
	InventoryStatusOpen   InventoryStatus = 0
	InventoryStatusClosed InventoryStatus = 1
)

// Valid indica si el código corresponde a un estado conocido.
func (s InventoryStatus) Valid() bool {
	return s == InventoryStatusOpen || s == InventoryStatusClosed
}

// CanTransitionTo la única transición permitida es open -> closed.
func (s InventoryStatus) CanTransitionTo(next InventoryStatus) bool {
	return s == InventoryStatusOpen && next == InventoryStatusClosed
}

func (s InventoryStatus) String() string {
	switch s {
	case InventoryStatusOpen:
		return "open"
	case InventoryStatusClosed:
		return "closed"
	}
	return "unknown"
}

// Inventory acta de auditoría manual de inventario: la cantidad contada a
// mano para un lote. Es una anotación: no modifica el libro de stock; la
// corrección del saldo se hace con una baja o un arribo explícitos.
type Inventory struct {
	ID        string
	Date      time.Time
	StockID   string
	Count     decimal.Decimal
	Info      string
	Status    InventoryStatus
	UserID    string
	CreatedAt time.Time
}

// InventoryDetail acta con nombres resueltos para listados.
type InventoryDetail struct {
	Inventory
	ProductName string
	UserLogin   string
}
