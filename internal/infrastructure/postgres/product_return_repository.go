package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

var _ repository.ProductReturnRepository = (*ProductReturnRepo)(nil)

// ProductReturnRepo implementación de ProductReturnRepository (usable con pool o tx).
type ProductReturnRepo struct {
	q Querier
}

// NewProductReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductReturnRepository(q Querier) *ProductReturnRepo {
	return &ProductReturnRepo{q: q}
}

const returnColumns = `id, date, supplier_id, product_id, count, invoice_number, price, status, created_by, created_at`

func scanReturn(row pgx.Row) (*entity.ProductReturn, error) {
	var ret entity.ProductReturn
	var status int
	err := row.Scan(&ret.ID, &ret.Date, &ret.SupplierID, &ret.ProductID, &ret.Count,
		&ret.InvoiceNumber, &ret.Price, &status, &ret.UserID, &ret.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	ret.Status = entity.ReturnStatus(status)
	return &ret, nil
}

// Create persiste una devolución.
func (r *ProductReturnRepo) Create(ret *entity.ProductReturn) error {
	query := `
		INSERT INTO product_returns (id, date, supplier_id, product_id, count, invoice_number, price, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.Date, ret.SupplierID, ret.ProductID, ret.Count,
		ret.InvoiceNumber, ret.Price, int(ret.Status), ret.UserID, ret.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product return: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por id. nil, nil si no existe.
func (r *ProductReturnRepo) GetByID(id string) (*entity.ProductReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM product_returns WHERE id = $1`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product return: %w", err)
	}
	return ret, nil
}

// GetByIDForUpdate obtiene la devolución bloqueando la fila. Dos gastos
// concurrentes del mismo id se serializan acá.
func (r *ProductReturnRepo) GetByIDForUpdate(id string) (*entity.ProductReturn, error) {
	query := `SELECT ` + returnColumns + ` FROM product_returns WHERE id = $1 FOR UPDATE`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product return for update: %w", err)
	}
	return ret, nil
}

// Update escribe los campos editables de una devolución pendiente.
func (r *ProductReturnRepo) Update(ret *entity.ProductReturn) error {
	query := `
		UPDATE product_returns
		SET count = $2, invoice_number = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, ret.ID, ret.Count, ret.InvoiceNumber)
	if err != nil {
		return fmt.Errorf("update product return: %w", err)
	}
	return nil
}

// SetStatus escribe solo el estado.
func (r *ProductReturnRepo) SetStatus(id string, status entity.ReturnStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE product_returns SET status = $2 WHERE id = $1`, id, int(status))
	if err != nil {
		return fmt.Errorf("set product return status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una devolución.
func (r *ProductReturnRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_returns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product return: %w", err)
	}
	return nil
}

// List lista devoluciones con nombres resueltos, filtros y total.
func (r *ProductReturnRepo) List(filter repository.ProductReturnFilter, limit, offset int) ([]*entity.ProductReturnDetail, int, error) {
	var conds []string
	var args []any
	if filter.SupplierID != "" {
		conds = append(conds, "pr.supplier_id = "+arg(&args, filter.SupplierID))
	}
	if filter.ProductID != "" {
		conds = append(conds, "pr.product_id = "+arg(&args, filter.ProductID))
	}
	if filter.FromDate != nil {
		conds = append(conds, "pr.date >= "+arg(&args, *filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "pr.date <= "+arg(&args, *filter.ToDate))
	}
	if filter.FromPrice != nil {
		conds = append(conds, "pr.price >= "+arg(&args, *filter.FromPrice))
	}
	if filter.ToPrice != nil {
		conds = append(conds, "pr.price <= "+arg(&args, *filter.ToPrice))
	}
	if filter.Status != nil {
		conds = append(conds, "pr.status = "+arg(&args, int(*filter.Status)))
	}

	from := `
		FROM product_returns pr
		JOIN products p ON p.id = pr.product_id
		JOIN suppliers s ON s.id = pr.supplier_id
		JOIN users u ON u.id = pr.created_by` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count product returns: %w", err)
	}

	query := `
		SELECT pr.id, pr.date, pr.supplier_id, pr.product_id, pr.count, pr.invoice_number,
		       pr.price, pr.status, pr.created_by, pr.created_at, p.name, s.name, u.login` + from + `
		ORDER BY pr.date DESC, pr.created_at DESC
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list product returns: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductReturnDetail
	for rows.Next() {
		var d entity.ProductReturnDetail
		var status int
		if err := rows.Scan(
			&d.ID, &d.Date, &d.SupplierID, &d.ProductID, &d.Count, &d.InvoiceNumber,
			&d.Price, &status, &d.UserID, &d.CreatedAt, &d.ProductName, &d.SupplierName, &d.UserLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product return: %w", err)
		}
		d.Status = entity.ReturnStatus(status)
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
