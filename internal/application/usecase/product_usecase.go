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

// ProductUseCase CRUD de productos. El stock de un producto no vive acá: se
// consulta por lotes en el libro de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto.
func (uc *ProductUseCase) Create(userID string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*dto.NamedResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update renombra un producto.
func (uc *ProductUseCase) Update(id string, in dto.NamedRequest) (*dto.NamedResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	product.Name = in.Name
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos filtrando por subcadena del nombre.
func (uc *ProductUseCase) List(filter repository.NameFilter, limit, offset int) ([]dto.NamedResponse, int, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, total, nil
}

func toProductResponse(p *entity.Product) *dto.NamedResponse {
	return &dto.NamedResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}
