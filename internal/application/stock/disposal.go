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

// DisposalUseCase bajas destructivas de stock (rotura, vencimiento, pérdida).
type DisposalUseCase struct {
	tx        TxRunner
	disposals repository.DisposalRepository
}

// NewDisposalUseCase construye el caso de uso.
func NewDisposalUseCase(tx TxRunner, disposals repository.DisposalRepository) *DisposalUseCase {
	return &DisposalUseCase{tx: tx, disposals: disposals}
}

// Create registra la baja y debita el lote en una transacción. Si el lote no
// alcanza, la baja se rechaza entera: nunca se recorta el débito al saldo
// disponible. Count cero es válido y deja el lote intacto (acta sin efecto).
func (uc *DisposalUseCase) Create(ctx context.Context, userID string, in dto.CreateDisposalRequest) (*dto.DisposalResponse, error) {
	if in.Count.Sign() < 0 {
		return nil, fmt.Errorf("%w: count no puede ser negativo", domain.ErrInvalidInput)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	var created *entity.Disposal
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		lot, err := ApplyDeltaByID(repos.Lots, in.StockID, in.Count.Neg())
		if err != nil {
			return err
		}
		created = &entity.Disposal{
			ID:        uuid.New().String(),
			Date:      date,
			StockID:   in.StockID,
			ProductID: lot.ProductID,
			Count:     in.Count,
			Cause:     in.Cause,
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		return repos.Disposals.Create(created)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("stock_id", in.StockID).Str("count", in.Count.String()).Msg("baja de stock registrada")
	return toDisposalResponse(created), nil
}

// GetByID obtiene una baja por id.
func (uc *DisposalUseCase) GetByID(id string) (*dto.DisposalResponse, error) {
	disposal, err := uc.disposals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if disposal == nil {
		return nil, nil
	}
	return toDisposalResponse(disposal), nil
}

// List lista bajas con filtros y paginación.
func (uc *DisposalUseCase) List(filter repository.DisposalFilter, limit, offset int) ([]dto.DisposalResponse, int, error) {
	list, total, err := uc.disposals.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.DisposalResponse, 0, len(list))
	for _, d := range list {
		resp := toDisposalResponse(&d.Disposal)
		resp.ProductName = d.ProductName
		resp.UserLogin = d.UserLogin
		out = append(out, *resp)
	}
	return out, total, nil
}

func toDisposalResponse(d *entity.Disposal) *dto.DisposalResponse {
	return &dto.DisposalResponse{
		ID:        d.ID,
		StockID:   d.StockID,
		ProductID: d.ProductID,
		Count:     d.Count,
		Date:      d.Date,
		Cause:     d.Cause,
	}
}
