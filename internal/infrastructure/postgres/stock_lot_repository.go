package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
	"github.com/dcastano/taller-api/internal/domain/stock"
)

var _ repository.StockLotRepository = (*StockLotRepo)(nil)

// StockLotRepo implementación de StockLotRepository (usable con pool o tx).
// Las variantes ForUpdate solo tienen sentido dentro de una transacción.
type StockLotRepo struct {
	q Querier
}

// NewStockLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLotRepository(q Querier) *StockLotRepo {
	return &StockLotRepo{q: q}
}

const stockLotColumns = `id, product_id, supplier_id, price, quantity, unit_id, updated_at`

func scanStockLot(row pgx.Row) (*entity.StockLot, error) {
	var lot entity.StockLot
	err := row.Scan(&lot.ID, &lot.ProductID, &lot.SupplierID, &lot.Price, &lot.Quantity, &lot.UnitID, &lot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lot, nil
}

// GetByKey obtiene el lote por su clave (producto, proveedor, precio).
func (r *StockLotRepo) GetByKey(key stock.LotKey) (*entity.StockLot, error) {
	query := `
		SELECT ` + stockLotColumns + `
		FROM stock WHERE product_id = $1 AND supplier_id = $2 AND price = $3`
	lot, err := scanStockLot(r.q.QueryRow(context.Background(), query, key.ProductID, key.SupplierID, key.Price))
	if err != nil {
		return nil, fmt.Errorf("get stock lot: %w", err)
	}
	return lot, nil
}

// GetByKeyForUpdate igual que GetByKey pero bloquea la fila (SELECT FOR UPDATE).
func (r *StockLotRepo) GetByKeyForUpdate(key stock.LotKey) (*entity.StockLot, error) {
	query := `
		SELECT ` + stockLotColumns + `
		FROM stock WHERE product_id = $1 AND supplier_id = $2 AND price = $3
		FOR UPDATE`
	lot, err := scanStockLot(r.q.QueryRow(context.Background(), query, key.ProductID, key.SupplierID, key.Price))
	if err != nil {
		return nil, fmt.Errorf("get stock lot for update: %w", err)
	}
	return lot, nil
}

// GetByIDForUpdate obtiene el lote por id de fila y lo bloquea.
func (r *StockLotRepo) GetByIDForUpdate(id string) (*entity.StockLot, error) {
	query := `
		SELECT ` + stockLotColumns + `
		FROM stock WHERE id = $1
		FOR UPDATE`
	lot, err := scanStockLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock lot by id for update: %w", err)
	}
	return lot, nil
}

// Create inserta un lote nuevo. El índice único sobre (product_id,
// supplier_id, price) respalda la identidad del lote; una carrera de inserts
// se mapea a domain.ErrConflict para que el llamador reintente o falle.
func (r *StockLotRepo) Create(lot *entity.StockLot) error {
	query := `
		INSERT INTO stock (id, product_id, supplier_id, price, quantity, unit_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.SupplierID, lot.Price, lot.Quantity, lot.UnitID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert stock lot: %w", err)
	}
	return nil
}

// Save escribe cantidad y unidad de un lote existente.
func (r *StockLotRepo) Save(lot *entity.StockLot) error {
	query := `
		UPDATE stock SET quantity = $2, unit_id = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lot.ID, lot.Quantity, lot.UnitID)
	if err != nil {
		return fmt.Errorf("save stock lot: %w", err)
	}
	return nil
}

// List lista lotes con nombres resueltos, filtros y total.
func (r *StockLotRepo) List(filter repository.StockLotFilter, limit, offset int) ([]*entity.StockLotDetail, int, error) {
	var conds []string
	var args []any
	if filter.ProductID != "" {
		conds = append(conds, "s.product_id = "+arg(&args, filter.ProductID))
	}
	if filter.SupplierID != "" {
		conds = append(conds, "s.supplier_id = "+arg(&args, filter.SupplierID))
	}
	if filter.ProductName != "" {
		conds = append(conds, "p.name ILIKE "+arg(&args, like(filter.ProductName)))
	}
	if filter.SupplierName != "" {
		conds = append(conds, "sp.name ILIKE "+arg(&args, like(filter.SupplierName)))
	}
	if filter.OnlyAvailable {
		conds = append(conds, "s.quantity > 0")
	}

	from := `
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN suppliers sp ON sp.id = s.supplier_id
		JOIN units u ON u.id = s.unit_id` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock lots: %w", err)
	}

	query := `
		SELECT s.id, s.product_id, s.supplier_id, s.price, s.quantity, s.unit_id, s.updated_at,
		       p.name, sp.name, u.name` + from + `
		ORDER BY p.name, sp.name, s.price
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock lots: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLotDetail
	for rows.Next() {
		var d entity.StockLotDetail
		if err := rows.Scan(
			&d.ID, &d.ProductID, &d.SupplierID, &d.Price, &d.Quantity, &d.UnitID, &d.UpdatedAt,
			&d.ProductName, &d.SupplierName, &d.UnitName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock lot: %w", err)
		}
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
