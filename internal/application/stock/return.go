package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

// ReturnUseCase devoluciones de mercadería al proveedor. La devolución nace
// pendiente y no toca el stock; gastarla (Spend) debita el lote y es
// irreversible.
type ReturnUseCase struct {
	tx        TxRunner
	returns   repository.ProductReturnRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(tx TxRunner, returns repository.ProductReturnRepository, suppliers repository.SupplierRepository, products repository.ProductRepository) *ReturnUseCase {
	return &ReturnUseCase{tx: tx, returns: returns, suppliers: suppliers, products: products}
}

// Create registra la devolución en estado pendiente. Todavía no se debita
// nada: registrar la intención y ejecutarla son pasos separados.
func (uc *ReturnUseCase) Create(userID string, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if in.Count.Sign() <= 0 {
		return nil, fmt.Errorf("%w: count debe ser positivo", domain.ErrInvalidInput)
	}
	if in.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrInvalidInput, in.SupplierID)
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrInvalidInput, in.ProductID)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	ret := &entity.ProductReturn{
		ID:            uuid.New().String(),
		Date:          date,
		SupplierID:    in.SupplierID,
		ProductID:     in.ProductID,
		Count:         in.Count,
		InvoiceNumber: in.InvoiceNumber,
		Price:         in.Price,
		Status:        entity.ReturnStatusPending,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}
	if err := uc.returns.Create(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// Spend gasta una devolución pendiente: debita count del lote (producto,
// proveedor, precio) y marca la devolución como gastada, todo en una
// transacción. Es irreversible; una devolución ya gastada devuelve
// ErrAlreadySpent aunque el lote tenga saldo de sobra. Dos Spend concurrentes
// del mismo id se serializan por el bloqueo de fila: exactamente uno gana.
func (uc *ReturnUseCase) Spend(ctx context.Context, id string) (*dto.ReturnResponse, error) {
	var spent *entity.ProductReturn
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		ret, err := repos.Returns.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if ret == nil {
			return domain.ErrNotFound
		}
		key := stock.ResolveLotKey(ret.ProductID, ret.SupplierID, ret.Price)
		if ret.Status == entity.ReturnStatusSpent {
			return stock.NewError(stock.ErrAlreadySpent, key)
		}
		if _, err := ApplyDelta(repos.Lots, key, "", ret.Count.Neg()); err != nil {
			// El gasto referencia un lote que debería existir; si no existe,
			// el problema es la referencia, no el saldo.
			if errors.Is(err, stock.ErrUnknownLot) {
				return stock.NewError(stock.ErrLotNotFound, key)
			}
			return err
		}
		if err := repos.Returns.SetStatus(id, entity.ReturnStatusSpent); err != nil {
			return err
		}
		ret.Status = entity.ReturnStatusSpent
		spent = ret
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("return_id", id).Msg("devolución gastada")
	return toReturnResponse(spent), nil
}

// GetByID obtiene una devolución por id.
func (uc *ReturnUseCase) GetByID(id string) (*dto.ReturnResponse, error) {
	ret, err := uc.returns.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, nil
	}
	return toReturnResponse(ret), nil
}

// Update edita una devolución. Solo mientras está pendiente: lo gastado es
// historia.
func (uc *ReturnUseCase) Update(id string, in dto.UpdateReturnRequest) (*dto.ReturnResponse, error) {
	ret, err := uc.returns.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, nil
	}
	if ret.Status != entity.ReturnStatusPending {
		return nil, stock.NewError(stock.ErrAlreadySpent, stock.ResolveLotKey(ret.ProductID, ret.SupplierID, ret.Price))
	}
	if in.Count != nil {
		if in.Count.Sign() <= 0 {
			return nil, fmt.Errorf("%w: count debe ser positivo", domain.ErrInvalidInput)
		}
		ret.Count = *in.Count
	}
	if in.InvoiceNumber != nil {
		ret.InvoiceNumber = *in.InvoiceNumber
	}
	if err := uc.returns.Update(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// Delete elimina una devolución pendiente. Una gastada no puede borrarse: su
// débito ya ocurrió.
func (uc *ReturnUseCase) Delete(id string) error {
	ret, err := uc.returns.GetByID(id)
	if err != nil {
		return err
	}
	if ret == nil {
		return domain.ErrNotFound
	}
	if ret.Status != entity.ReturnStatusPending {
		return stock.NewError(stock.ErrAlreadySpent, stock.ResolveLotKey(ret.ProductID, ret.SupplierID, ret.Price))
	}
	return uc.returns.Delete(id)
}

// List lista devoluciones con filtros y paginación.
func (uc *ReturnUseCase) List(filter repository.ProductReturnFilter, limit, offset int) ([]dto.ReturnResponse, int, error) {
	list, total, err := uc.returns.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		resp := toReturnResponse(&r.ProductReturn)
		resp.ProductName = r.ProductName
		resp.SupplierName = r.SupplierName
		resp.UserLogin = r.UserLogin
		out = append(out, *resp)
	}
	return out, total, nil
}

func toReturnResponse(r *entity.ProductReturn) *dto.ReturnResponse {
	return &dto.ReturnResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		SupplierID:    r.SupplierID,
		Price:         r.Price,
		Count:         r.Count,
		Date:          r.Date,
		InvoiceNumber: r.InvoiceNumber,
		Status:        int(r.Status),
		StatusName:    r.Status.String(),
	}
}
