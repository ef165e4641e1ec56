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

// UnitUseCase CRUD de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad de medida.
func (uc *UnitUseCase) Create(userID string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		Name:      in.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad por id.
func (uc *UnitUseCase) GetByID(id string) (*dto.NamedResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toUnitResponse(unit), nil
}

// Update renombra una unidad.
func (uc *UnitUseCase) Update(id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	unit.Name = in.Name
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista unidades filtrando por subcadena del nombre.
func (uc *UnitUseCase) List(filter repository.NameFilter, limit, offset int) ([]dto.NamedResponse, int, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUnitResponse(u))
	}
	return out, total, nil
}

func toUnitResponse(u *entity.Unit) *dto.NamedResponse {
	return &dto.NamedResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}
