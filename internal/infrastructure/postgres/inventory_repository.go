package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un acta de inventario.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, date, stock_id, count, info, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Date, inv.StockID, inv.Count, inv.Info, int(inv.Status), inv.UserID, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un acta por id. nil, nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, date, stock_id, count, info, status, created_by, created_at
		FROM inventories WHERE id = $1`
	var inv entity.Inventory
	var status int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Date, &inv.StockID, &inv.Count, &inv.Info, &status, &inv.UserID, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	inv.Status = entity.InventoryStatus(status)
	return &inv, nil
}

// Update escribe los campos editables del acta.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories SET count = $2, info = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.Count, inv.Info, int(inv.Status))
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// List lista actas con nombres resueltos, filtros y total.
func (r *InventoryRepo) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryDetail, int, error) {
	var conds []string
	var args []any
	if filter.StockID != "" {
		conds = append(conds, "i.stock_id = "+arg(&args, filter.StockID))
	}
	if filter.Info != "" {
		conds = append(conds, "i.info ILIKE "+arg(&args, like(filter.Info)))
	}
	if filter.Status != nil {
		conds = append(conds, "i.status = "+arg(&args, int(*filter.Status)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "i.date >= "+arg(&args, *filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "i.date <= "+arg(&args, *filter.ToDate))
	}

	from := `
		FROM inventories i
		JOIN stock s ON s.id = i.stock_id
		JOIN products p ON p.id = s.product_id
		JOIN users u ON u.id = i.created_by` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventories: %w", err)
	}

	query := `
		SELECT i.id, i.date, i.stock_id, i.count, i.info, i.status, i.created_by, i.created_at,
		       p.name, u.login` + from + `
		ORDER BY i.date DESC, i.created_at DESC
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryDetail
	for rows.Next() {
		var d entity.InventoryDetail
		var status int
		if err := rows.Scan(
			&d.ID, &d.Date, &d.StockID, &d.Count, &d.Info, &status, &d.UserID, &d.CreatedAt,
			&d.ProductName, &d.UserLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inventory: %w", err)
		}
		d.Status = entity.InventoryStatus(status)
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
