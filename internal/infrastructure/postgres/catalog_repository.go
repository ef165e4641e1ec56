package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// Adaptadores de los catálogos. Producto, proveedor y unidad comparten la
// misma forma de tabla (id, name, created_by, timestamps); el mecánico agrega
// tarifa y comisión.

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.UnitRepository     = (*UnitRepo)(nil)
	_ repository.MasterRepository   = (*MasterRepo)(nil)
)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UserID, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, created_by, created_at, updated_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update renombra un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `UPDATE products SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, product.ID, product.Name, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos por subcadena del nombre, con total.
func (r *ProductRepo) List(filter repository.NameFilter, limit, offset int) ([]*entity.Product, int, error) {
	var conds []string
	var args []any
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg(&args, like(filter.Name)))
	}
	from := ` FROM products` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT id, name, created_by, created_at, updated_at` + from +
		` ORDER BY name LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, total, rows.Err()
}

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.UserID, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id. nil, nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, created_by, created_at, updated_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update renombra un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `UPDATE suppliers SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, supplier.ID, supplier.Name, supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores por subcadena del nombre, con total.
func (r *SupplierRepo) List(filter repository.NameFilter, limit, offset int) ([]*entity.Supplier, int, error) {
	var conds []string
	var args []any
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg(&args, like(filter.Name)))
	}
	from := ` FROM suppliers` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}

	query := `SELECT id, name, created_by, created_at, updated_at` + from +
		` ORDER BY name LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, total, rows.Err()
}

// UnitRepo implementación de UnitRepository (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una unidad.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.UserID, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por id. nil, nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT id, name, created_by, created_at, updated_at FROM units WHERE id = $1`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.UserID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// Update renombra una unidad.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `UPDATE units SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// List lista unidades por subcadena del nombre, con total.
func (r *UnitRepo) List(filter repository.NameFilter, limit, offset int) ([]*entity.Unit, int, error) {
	var conds []string
	var args []any
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg(&args, like(filter.Name)))
	}
	from := ` FROM units` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count units: %w", err)
	}

	query := `SELECT id, name, created_by, created_at, updated_at` + from +
		` ORDER BY name LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var out []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.UserID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan unit: %w", err)
		}
		out = append(out, &u)
	}
	return out, total, rows.Err()
}

// MasterRepo implementación de MasterRepository (usable con pool o tx).
type MasterRepo struct {
	q Querier
}

// NewMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMasterRepository(q Querier) *MasterRepo {
	return &MasterRepo{q: q}
}

// Create persiste un mecánico.
func (r *MasterRepo) Create(master *entity.Master) error {
	query := `
		INSERT INTO masters (id, name, amount, percentage, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		master.ID, master.Name, master.Amount, master.Percentage,
		master.UserID, master.CreatedAt, master.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert master: %w", err)
	}
	return nil
}

// GetByID obtiene un mecánico por id. nil, nil si no existe.
func (r *MasterRepo) GetByID(id string) (*entity.Master, error) {
	query := `SELECT id, name, amount, percentage, created_by, created_at, updated_at FROM masters WHERE id = $1`
	var m entity.Master
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Amount, &m.Percentage, &m.UserID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get master: %w", err)
	}
	return &m, nil
}

// Update modifica nombre, tarifa y comisión.
func (r *MasterRepo) Update(master *entity.Master) error {
	query := `UPDATE masters SET name = $2, amount = $3, percentage = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		master.ID, master.Name, master.Amount, master.Percentage, master.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update master: %w", err)
	}
	return nil
}

// List lista mecánicos por subcadena del nombre, con total.
func (r *MasterRepo) List(filter repository.NameFilter, limit, offset int) ([]*entity.Master, int, error) {
	var conds []string
	var args []any
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg(&args, like(filter.Name)))
	}
	from := ` FROM masters` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count masters: %w", err)
	}

	query := `SELECT id, name, amount, percentage, created_by, created_at, updated_at` + from +
		` ORDER BY name LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list masters: %w", err)
	}
	defer rows.Close()

	var out []*entity.Master
	for rows.Next() {
		var m entity.Master
		if err := rows.Scan(&m.ID, &m.Name, &m.Amount, &m.Percentage, &m.UserID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan master: %w", err)
		}
		out = append(out, &m)
	}
	return out, total, rows.Err()
}
