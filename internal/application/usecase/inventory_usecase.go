package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// InventoryUseCase actas de inventario. Son anotaciones de auditoría: nunca
// tocan el libro de stock; la corrección del saldo se hace con una baja o un
// arribo explícitos.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create registra un acta abierta.
func (uc *InventoryUseCase) Create(userID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	if in.Count.Sign() < 0 {
		return nil, fmt.Errorf("%w: count no puede ser negativo", domain.ErrInvalidInput)
	}
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		Date:      date,
		StockID:   in.StockID,
		Count:     in.Count,
		Info:      in.Info,
		Status:    entity.InventoryStatusOpen,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// GetByID obtiene un acta por id.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInventoryResponse(inv), nil
}

// Update edita el acta. Cerrarla es terminal.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	if inv.Status == entity.InventoryStatusClosed {
		return nil, fmt.Errorf("%w: el acta está cerrada", domain.ErrConflict)
	}
	if in.Count != nil {
		if in.Count.Sign() < 0 {
			return nil, fmt.Errorf("%w: count no puede ser negativo", domain.ErrInvalidInput)
		}
		inv.Count = *in.Count
	}
	if in.Info != nil {
		inv.Info = *in.Info
	}
	if in.Status != nil {
		next := entity.InventoryStatus(*in.Status)
		if !next.Valid() {
			return nil, fmt.Errorf("%w: estado %d", domain.ErrInvalidInput, *in.Status)
		}
		if next != inv.Status && !inv.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: transición %s -> %s", domain.ErrConflict, inv.Status, next)
		}
		inv.Status = next
	}
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// List lista actas con filtros y paginación.
func (uc *InventoryUseCase) List(filter repository.InventoryFilter, limit, offset int) ([]dto.InventoryResponse, int, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		resp := toInventoryResponse(&inv.Inventory)
		resp.ProductName = inv.ProductName
		out = append(out, *resp)
	}
	return out, total, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:         inv.ID,
		StockID:    inv.StockID,
		Count:      inv.Count,
		Date:       inv.Date,
		Info:       inv.Info,
		Status:     int(inv.Status),
		StatusName: inv.Status.String(),
	}
}
