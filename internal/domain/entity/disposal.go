package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disposal baja destructiva de stock (rotura, vencimiento). Siempre debita
// Count del lote indicado por StockID; falla si la cantidad no alcanza, nunca
// recorta. Count = 0 se acepta como no-op.
type Disposal struct {
	ID        string
	Date      time.Time
	StockID   string // lote concreto al que se imputa la baja
	ProductID string // derivado del lote, redundante para listados
	Count     decimal.Decimal
	Cause     string
	UserID    string
	CreatedAt time.Time
}

// DisposalDetail baja con nombres resueltos para listados.
type DisposalDetail struct {
	Disposal
	ProductName string
	UserLogin   string
}
