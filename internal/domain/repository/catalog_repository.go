package repository

import "github.com/dcastano/taller-api/internal/domain/entity"

// NameFilter filtro común de los catálogos: subcadena del nombre (ILIKE).
type NameFilter struct {
	Name string
}

// ProductRepository puerto CRUD de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve la página y el total de filas que cumplen el filtro.
	List(filter NameFilter, limit, offset int) ([]*entity.Product, int, error)
}

// SupplierRepository puerto CRUD de proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(filter NameFilter, limit, offset int) ([]*entity.Supplier, int, error)
}

// UnitRepository puerto CRUD de unidades de medida.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	List(filter NameFilter, limit, offset int) ([]*entity.Unit, int, error)
}

// MasterRepository puerto CRUD de mecánicos.
type MasterRepository interface {
	Create(master *entity.Master) error
	GetByID(id string) (*entity.Master, error)
	Update(master *entity.Master) error
	List(filter NameFilter, limit, offset int) ([]*entity.Master, int, error)
}
