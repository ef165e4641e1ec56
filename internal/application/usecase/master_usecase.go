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

// MasterUseCase CRUD de mecánicos: nombre, tarifa fija y comisión.
type MasterUseCase struct {
	repo repository.MasterRepository
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(repo repository.MasterRepository) *MasterUseCase {
	return &MasterUseCase{repo: repo}
}

// Create crea un mecánico.
func (uc *MasterUseCase) Create(userID string, in dto.MasterRequest) (*dto.MasterResponse, error) {
	if err := validateMaster(in); err != nil {
		return nil, err
	}
	now := time.Now()
	master := &entity.Master{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Amount:     in.Amount,
		Percentage: in.Percentage,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(master); err != nil {
		return nil, err
	}
	return toMasterResponse(master), nil
}

// GetByID obtiene un mecánico por id.
func (uc *MasterUseCase) GetByID(id string) (*dto.MasterResponse, error) {
	master, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, nil
	}
	return toMasterResponse(master), nil
}

// Update modifica nombre, tarifa y comisión.
func (uc *MasterUseCase) Update(id string, in dto.MasterRequest) (*dto.MasterResponse, error) {
	master, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if master == nil {
		return nil, nil
	}
	if err := validateMaster(in); err != nil {
		return nil, err
	}
	master.Name = in.Name
	master.Amount = in.Amount
	master.Percentage = in.Percentage
	master.UpdatedAt = time.Now()
	if err := uc.repo.Update(master); err != nil {
		return nil, err
	}
	return toMasterResponse(master), nil
}

// List lista mecánicos filtrando por subcadena del nombre.
func (uc *MasterUseCase) List(filter repository.NameFilter, limit, offset int) ([]dto.MasterResponse, int, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MasterResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMasterResponse(m))
	}
	return out, total, nil
}

func validateMaster(in dto.MasterRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Amount.Sign() < 0 || in.Percentage.Sign() < 0 {
		return fmt.Errorf("%w: tarifa y comisión no pueden ser negativas", domain.ErrInvalidInput)
	}
	return nil
}

func toMasterResponse(m *entity.Master) *dto.MasterResponse {
	return &dto.MasterResponse{
		ID:         m.ID,
		Name:       m.Name,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		CreatedAt:  m.CreatedAt,
	}
}
