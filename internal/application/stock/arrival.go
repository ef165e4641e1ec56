package stock

import (
	"context"
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

// ArrivalUseCase registro de arribos de mercadería. Crear un arribo acredita
// el stock; el registro y el crédito son una sola operación atómica.
type ArrivalUseCase struct {
	tx        TxRunner
	arrivals  repository.ArrivalRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	units     repository.UnitRepository
}

// NewArrivalUseCase construye el caso de uso.
func NewArrivalUseCase(tx TxRunner, arrivals repository.ArrivalRepository, suppliers repository.SupplierRepository, products repository.ProductRepository, units repository.UnitRepository) *ArrivalUseCase {
	return &ArrivalUseCase{tx: tx, arrivals: arrivals, suppliers: suppliers, products: products, units: units}
}

// Create registra un arribo de uno o más ítems y acredita cada lote
// (producto, proveedor, precio de venta) en una sola transacción. Si un ítem
// falla, ningún arribo queda registrado y ningún lote queda acreditado.
func (uc *ArrivalUseCase) Create(ctx context.Context, userID string, in dto.CreateArrivalRequest) ([]dto.ArrivalResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el arribo no tiene ítems", domain.ErrInvalidInput)
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrInvalidInput, in.SupplierID)
	}
	for _, item := range in.Items {
		if item.Count.Sign() <= 0 {
			return nil, fmt.Errorf("%w: count debe ser positivo", domain.ErrInvalidInput)
		}
		if item.PurchasePrice.Sign() < 0 || item.RetailPrice.Sign() < 0 {
			return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
		}
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrInvalidInput, item.ProductID)
		}
		unit, err := uc.units.GetByID(item.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, fmt.Errorf("%w: unidad %s", domain.ErrInvalidInput, item.UnitID)
		}
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	created := make([]*entity.Arrival, 0, len(in.Items))
	err = uc.tx.Run(ctx, func(repos TxRepos) error {
		for _, item := range in.Items {
			arrival := &entity.Arrival{
				ID:            uuid.New().String(),
				SupplierID:    in.SupplierID,
				InvoiceNumber: in.InvoiceNumber,
				Date:          date,
				Manufacturer:  item.Manufacturer,
				ProductID:     item.ProductID,
				Count:         item.Count,
				UnitID:        item.UnitID,
				PurchasePrice: item.PurchasePrice,
				RetailPrice:   item.RetailPrice,
				Info:          item.Info,
				Status:        entity.ArrivalStatusOpen,
				UserID:        userID,
				CreatedAt:     time.Now(),
			}
			if err := repos.Arrivals.Create(arrival); err != nil {
				return err
			}
			key := stock.ResolveLotKey(item.ProductID, in.SupplierID, item.RetailPrice)
			if _, err := ApplyDelta(repos.Lots, key, item.UnitID, item.Count); err != nil {
				return err
			}
			created = append(created, arrival)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("supplier_id", in.SupplierID).Int("items", len(created)).Msg("arribo registrado")
	out := make([]dto.ArrivalResponse, 0, len(created))
	for _, a := range created {
		out = append(out, *toArrivalResponse(a))
	}
	return out, nil
}

// GetByID obtiene un arribo por id.
func (uc *ArrivalUseCase) GetByID(id string) (*dto.ArrivalResponse, error) {
	arrival, err := uc.arrivals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if arrival == nil {
		return nil, nil
	}
	return toArrivalResponse(arrival), nil
}

// Update modifica los campos administrativos de un arribo. Count y precios son
// historia inmutable: corregir una cantidad se hace con una baja o un arribo
// nuevo, nunca editando este registro.
func (uc *ArrivalUseCase) Update(id string, in dto.UpdateArrivalRequest) (*dto.ArrivalResponse, error) {
	arrival, err := uc.arrivals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if arrival == nil {
		return nil, nil
	}
	if in.InvoiceNumber != nil {
		arrival.InvoiceNumber = *in.InvoiceNumber
	}
	if in.Manufacturer != nil {
		arrival.Manufacturer = *in.Manufacturer
	}
	if in.Info != nil {
		arrival.Info = *in.Info
	}
	if in.Status != nil {
		next := entity.ArrivalStatus(*in.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: estado %d", domain.ErrInvalidInput, *in.Status)
		}
		if next != arrival.Status && !arrival.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: transición %s -> %s", domain.ErrConflict, arrival.Status, next)
		}
		arrival.Status = next
	}
	if err := uc.arrivals.Update(arrival); err != nil {
		return nil, err
	}
	return toArrivalResponse(arrival), nil
}

// List lista arribos con filtros y paginación. Devuelve también el total.
func (uc *ArrivalUseCase) List(filter repository.ArrivalFilter, limit, offset int) ([]dto.ArrivalResponse, int, error) {
	list, total, err := uc.arrivals.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ArrivalResponse, 0, len(list))
	for _, a := range list {
		resp := toArrivalResponse(&a.Arrival)
		resp.ProductName = a.ProductName
		resp.SupplierName = a.SupplierName
		resp.UnitName = a.UnitName
		out = append(out, *resp)
	}
	return out, total, nil
}

func toArrivalResponse(a *entity.Arrival) *dto.ArrivalResponse {
	return &dto.ArrivalResponse{
		ID:            a.ID,
		SupplierID:    a.SupplierID,
		InvoiceNumber: a.InvoiceNumber,
		Date:          a.Date,
		Manufacturer:  a.Manufacturer,
		ProductID:     a.ProductID,
		Count:         a.Count,
		UnitID:        a.UnitID,
		PurchasePrice: a.PurchasePrice,
		RetailPrice:   a.RetailPrice,
		Info:          a.Info,
		Status:        int(a.Status),
		StatusName:    a.Status.String(),
	}
}
