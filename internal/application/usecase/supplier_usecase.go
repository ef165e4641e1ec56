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

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(userID string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(id string) (*dto.NamedResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update renombra un proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	supplier.Name = in.Name
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores filtrando por subcadena del nombre.
func (uc *SupplierUseCase) List(filter repository.NameFilter, limit, offset int) ([]dto.NamedResponse, int, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, total, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.NamedResponse {
	return &dto.NamedResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}
