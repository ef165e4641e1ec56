package stock

import (
	"errors"
	"fmt"
)

// Violaciones de reglas del libro de stock. Son errores de negocio: se
// devuelven al cliente como 4xx y nunca se reintentan.
var (
	// ErrUnknownLot débito contra un lote que nunca existió.
	ErrUnknownLot = errors.New("lote inexistente")
	// ErrInsufficientStock el débito dejaría la cantidad en negativo.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrInconsistentUnit el evento trae una unidad distinta a la del lote.
	ErrInconsistentUnit = errors.New("unidad de medida inconsistente")
	// ErrAlreadySpent la devolución ya fue gastada (estado terminal).
	ErrAlreadySpent = errors.New("devolución ya gastada")
	// ErrLotNotFound ninguna fila de stock coincide con la clave resuelta.
	ErrLotNotFound = errors.New("lote no encontrado")
)

// Error error estructurado del libro de stock: identifica la regla violada y
// el lote afectado. Compatible con errors.Is contra los centinelas de arriba.
type Error struct {
	Kind  error  // uno de los centinelas del paquete
	Key   LotKey // clave del lote afectado
	LotID string // id de fila, si el lote se resolvió por id
}

// NewError construye un error de stock para la clave dada.
func NewError(kind error, key LotKey) *Error {
	return &Error{Kind: kind, Key: key}
}

// NewErrorByID construye un error de stock cuando solo se conoce el id de fila.
func NewErrorByID(kind error, lotID string) *Error {
	return &Error{Kind: kind, LotID: lotID}
}

func (e *Error) Error() string {
	if e.LotID != "" {
		return fmt.Sprintf("%v (lote id=%s)", e.Kind, e.LotID)
	}
	return fmt.Sprintf("%v (%s)", e.Kind, e.Key)
}

// Unwrap permite errors.Is(err, stock.ErrInsufficientStock) y similares.
func (e *Error) Unwrap() error { return e.Kind }
