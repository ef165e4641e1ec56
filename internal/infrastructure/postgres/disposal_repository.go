package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

var _ repository.DisposalRepository = (*DisposalRepo)(nil)

// DisposalRepo implementación de DisposalRepository (usable con pool o tx).
type DisposalRepo struct {
	q Querier
}

// NewDisposalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDisposalRepository(q Querier) *DisposalRepo {
	return &DisposalRepo{q: q}
}

// Create persiste una baja.
func (r *DisposalRepo) Create(disposal *entity.Disposal) error {
	query := `
		INSERT INTO disposals (id, date, stock_id, product_id, count, cause, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		disposal.ID, disposal.Date, disposal.StockID, disposal.ProductID,
		disposal.Count, disposal.Cause, disposal.UserID, disposal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert disposal: %w", err)
	}
	return nil
}

// GetByID obtiene una baja por id. nil, nil si no existe.
func (r *DisposalRepo) GetByID(id string) (*entity.Disposal, error) {
	query := `
		SELECT id, date, stock_id, product_id, count, cause, created_by, created_at
		FROM disposals WHERE id = $1`
	var d entity.Disposal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Date, &d.StockID, &d.ProductID, &d.Count, &d.Cause, &d.UserID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get disposal: %w", err)
	}
	return &d, nil
}

// List lista bajas con nombres resueltos, filtros y total.
func (r *DisposalRepo) List(filter repository.DisposalFilter, limit, offset int) ([]*entity.DisposalDetail, int, error) {
	var conds []string
	var args []any
	if filter.ProductID != "" {
		conds = append(conds, "d.product_id = "+arg(&args, filter.ProductID))
	}
	if filter.Cause != "" {
		conds = append(conds, "d.cause ILIKE "+arg(&args, like(filter.Cause)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "d.date >= "+arg(&args, *filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "d.date <= "+arg(&args, *filter.ToDate))
	}

	from := `
		FROM disposals d
		JOIN products p ON p.id = d.product_id
		JOIN users u ON u.id = d.created_by` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count disposals: %w", err)
	}

	query := `
		SELECT d.id, d.date, d.stock_id, d.product_id, d.count, d.cause, d.created_by, d.created_at,
		       p.name, u.login` + from + `
		ORDER BY d.date DESC, d.created_at DESC
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list disposals: %w", err)
	}
	defer rows.Close()

	var out []*entity.DisposalDetail
	for rows.Next() {
		var d entity.DisposalDetail
		if err := rows.Scan(
			&d.ID, &d.Date, &d.StockID, &d.ProductID, &d.Count, &d.Cause, &d.UserID, &d.CreatedAt,
			&d.ProductName, &d.UserLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("scan disposal: %w", err)
		}
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
