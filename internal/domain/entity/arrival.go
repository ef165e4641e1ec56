package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArrivalStatus estado del ciclo de vida de un arribo. En el wire se conserva
// el código entero.
type ArrivalStatus int

const (
	ArrivalStatusDraft     ArrivalStatus = 0 // borrador, aún sin confirmar
	ArrivalStatusOpen      ArrivalStatus = 1 // registrado y acreditado en stock (default)
	ArrivalStatusAccepted  ArrivalStatus = 2 // conciliado contra la factura del proveedor
	ArrivalStatusCancelled ArrivalStatus = 3 // anulado administrativamente
)

// arrivalTransitions tabla de transiciones permitidas.
var arrivalTransitions = map[ArrivalStatus][]ArrivalStatus{
	ArrivalStatusDraft:     {ArrivalStatusOpen, ArrivalStatusCancelled},
	ArrivalStatusOpen:      {ArrivalStatusAccepted, ArrivalStatusCancelled},
	ArrivalStatusAccepted:  {},
	ArrivalStatusCancelled: {},
}

// Valid indica si el código corresponde a un estado conocido.
func (s ArrivalStatus) Valid() bool {
	return s >= ArrivalStatusDraft && s <= ArrivalStatusCancelled
}

// CanTransitionTo indica si la transición s -> next está permitida.
func (s ArrivalStatus) CanTransitionTo(next ArrivalStatus) bool {
	for _, t := range arrivalTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s ArrivalStatus) String() string {
	switch s {
	case ArrivalStatusDraft:
		return "draft"
	case ArrivalStatusOpen:
		return "open"
	case ArrivalStatusAccepted:
		return "accepted"
	case ArrivalStatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Arrival recepción de mercadería de un proveedor. Al crearse acredita
// exactamente una vez Count al lote (ProductID, SupplierID, RetailPrice);
// si el crédito falla, el arribo no se persiste.
type Arrival struct {
	ID            string
	SupplierID    string
	InvoiceNumber string
	Date          time.Time
	Manufacturer  string
	ProductID     string
	Count         decimal.Decimal
	UnitID        string
	PurchasePrice decimal.Decimal
	RetailPrice   decimal.Decimal
	Info          string
	Status        ArrivalStatus
	UserID        string
	CreatedAt     time.Time
}

// ArrivalDetail arribo con nombres resueltos para listados.
type ArrivalDetail struct {
	Arrival
	ProductName  string
	SupplierName string
	UnitName     string
}
