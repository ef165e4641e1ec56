package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnStatus estado de una devolución a proveedor.
type ReturnStatus int

const (
	// ReturnStatusPending promesa de devolución; todavía no afecta el stock.
	ReturnStatusPending ReturnStatus = 0
	// ReturnStatusSpent la devolución se gastó: el stock ya fue debitado.
	// Estado terminal, sin vuelta atrás.
	ReturnStatusSpent ReturnStatus = 1
)

// Valid indica si el código corresponde a un estado conocido.
func (s ReturnStatus) Valid() bool {
	return s == ReturnStatusPending || s == ReturnStatusSpent
}

// CanTransitionTo la única transición permitida es pending -> spent.
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	return s == ReturnStatusPending && next == ReturnStatusSpent
}

func (s ReturnStatus) String() string {
	switch s {
	case ReturnStatusPending:
		return "pending"
	case ReturnStatusSpent:
		return "spent"
	}
	return "unknown"
}

// ProductReturn devolución de mercadería a un proveedor. Nace pending; el
// gasto (spend) debita Count del lote (ProductID, SupplierID, Price) y es
// irreversible. Solo puede borrarse o editarse mientras está pending.
type ProductReturn struct {
	ID            string
	Date          time.Time
	SupplierID    string
	ProductID     string
	Count         decimal.Decimal
	InvoiceNumber string
	Price         decimal.Decimal
	Status        ReturnStatus
	UserID        string
	CreatedAt     time.Time
}

// ProductReturnDetail devolución con nombres resueltos para listados.
type ProductReturnDetail struct {
	ProductReturn
	ProductName  string
	SupplierName string
	UserLogin    string
}
