package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// ApplyDelta aplica un delta firmado al lote identificado por key, bajo el
// bloqueo de fila del repositorio (SELECT FOR UPDATE). Reglas:
//
//   - lote inexistente y delta positivo: se crea el lote con esa cantidad;
//   - lote inexistente y delta no positivo: ErrUnknownLot;
//   - unidad distinta a la del lote: ErrInconsistentUnit;
//   - la cantidad resultante sería negativa: ErrInsufficientStock, sin
//     recortar el débito;
//   - delta cero sobre lote existente: no-op, no escribe nada.
//
// Devuelve la cantidad resultante del lote. Debe llamarse con un repositorio
// atado a la transacción del llamador.
func ApplyDelta(lots repository.StockLotRepository, key stock.LotKey, unitID string, delta decimal.Decimal) (decimal.Decimal, error) {
	lot, err := lots.GetByKeyForUpdate(key)
	if err != nil {
		return decimal.Zero, err
	}
	if lot == nil {
		if delta.Sign() <= 0 {
			log.Warn().Str("lot", key.String()).Msg("débito contra lote inexistente")
			return decimal.Zero, stock.NewError(stock.ErrUnknownLot, key)
		}
		lot = &entity.StockLot{
			ID:         uuid.New().String(),
			ProductID:  key.ProductID,
			SupplierID: key.SupplierID,
			Price:      key.Price,
			Quantity:   delta,
			UnitID:     unitID,
			UpdatedAt:  time.Now(),
		}
		if err := lots.Create(lot); err != nil {
			return decimal.Zero, err
		}
		return lot.Quantity, nil
	}
	if unitID != "" && lot.UnitID != "" && lot.UnitID != unitID {
		return decimal.Zero, stock.NewError(stock.ErrInconsistentUnit, key)
	}
	if delta.IsZero() {
		return lot.Quantity, nil
	}
	newQty := lot.Quantity.Add(delta)
	if newQty.Sign() < 0 {
		log.Warn().
			Str("lot", key.String()).
			Str("have", lot.Quantity.String()).
			Str("delta", delta.String()).
			Msg("stock insuficiente")
		return decimal.Zero, stock.NewError(stock.ErrInsufficientStock, key)
	}
	lot.Quantity = newQty
	lot.UpdatedAt = time.Now()
	if err := lots.Save(lot); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// ApplyDeltaByID igual que ApplyDelta pero resuelve el lote por id de fila.
// Si el id no existe devuelve ErrLotNotFound. Delta cero es un no-op y no
// escribe nada. Devuelve el lote (bloqueado) para que el llamador pueda leer
// sus campos sin otra consulta.
func ApplyDeltaByID(lots repository.StockLotRepository, lotID string, delta decimal.Decimal) (*entity.StockLot, error) {
	lot, err := lots.GetByIDForUpdate(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, stock.NewErrorByID(stock.ErrLotNotFound, lotID)
	}
	if delta.IsZero() {
		return lot, nil
	}
	newQty := lot.Quantity.Add(delta)
	if newQty.Sign() < 0 {
		log.Warn().
			Str("lot_id", lotID).
			Str("have", lot.Quantity.String()).
			Str("delta", delta.String()).
			Msg("stock insuficiente")
		return nil, &stock.Error{Kind: stock.ErrInsufficientStock, Key: lot.Key(), LotID: lotID}
	}
	lot.Quantity = newQty
	lot.UpdatedAt = time.Now()
	if err := lots.Save(lot); err != nil {
		return nil, err
	}
	return lot, nil
}
