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
)

// SaleUseCase ventas de servicio con consumo de repuestos.
type SaleUseCase struct {
	tx      TxRunner
	sales   repository.SaleRepository
	masters repository.MasterRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, sales repository.SaleRepository, masters repository.MasterRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, masters: masters}
}

// Create registra la venta y debita cada lote referenciado, todo o nada: si un
// solo lote no alcanza (o no existe), ningún lote queda debitado y la venta no
// se persiste. Una venta sin ítems es válida: servicio puro, sin repuestos.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	for _, item := range in.Items {
		if item.Count.Sign() <= 0 {
			return nil, fmt.Errorf("%w: count debe ser positivo", domain.ErrInvalidInput)
		}
	}
	if in.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.MasterID != "" {
		master, err := uc.masters.GetByID(in.MasterID)
		if err != nil {
			return nil, err
		}
		if master == nil {
			return nil, fmt.Errorf("%w: mecánico %s", domain.ErrInvalidInput, in.MasterID)
		}
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      date,
		CarModel:  in.CarModel,
		CarVIN:    in.CarVIN,
		CarNumber: in.CarNumber,
		MasterID:  in.MasterID,
		Service:   in.Service,
		Price:     in.Price,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Sales.Create(sale); err != nil {
			return err
		}
		for _, item := range in.Items {
			if _, err := ApplyDeltaByID(repos.Lots, item.StockID, item.Count.Neg()); err != nil {
				return err
			}
			saleItem := entity.SaleItem{SaleID: sale.ID, StockID: item.StockID, Count: item.Count}
			if err := repos.Sales.AddItem(&saleItem); err != nil {
				return err
			}
			sale.Items = append(sale.Items, saleItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("sale_id", sale.ID).Int("items", len(sale.Items)).Msg("venta registrada")
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta con sus ítems.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con filtros y paginación.
func (uc *SaleUseCase) List(filter repository.SaleFilter, limit, offset int) ([]dto.SaleResponse, int, error) {
	list, total, err := uc.sales.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		resp := toSaleResponse(&s.Sale)
		resp.MasterName = s.MasterName
		resp.UserLogin = s.UserLogin
		out = append(out, *resp)
	}
	return out, total, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{StockID: it.StockID, Count: it.Count})
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		Date:      s.Date,
		CarModel:  s.CarModel,
		CarVIN:    s.CarVIN,
		CarNumber: s.CarNumber,
		MasterID:  s.MasterID,
		Service:   s.Service,
		Price:     s.Price,
		Items:     items,
	}
}
