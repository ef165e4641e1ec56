package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta. Los ítems van por AddItem.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date, car_model, car_vin, car_number, master_id, service, price, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.CarModel, sale.CarVIN, sale.CarNumber,
		nullIfEmpty(sale.MasterID), sale.Service, sale.Price, sale.UserID, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// AddItem persiste el consumo de un lote dentro de la venta.
func (r *SaleRepo) AddItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, stock_id, count)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, item.SaleID, item.StockID, item.Count)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con sus ítems. nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, date, car_model, car_vin, car_number, master_id, service, price, created_by, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var masterID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.CarModel, &s.CarVIN, &s.CarNumber, &masterID,
		&s.Service, &s.Price, &s.UserID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if masterID != nil {
		s.MasterID = *masterID
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT sale_id, stock_id, count FROM sale_items WHERE sale_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.SaleID, &item.StockID, &item.Count); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return &s, rows.Err()
}

// List lista ventas con nombres resueltos, filtros y total. No carga ítems:
// el detalle completo va por GetByID.
func (r *SaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.SaleDetail, int, error) {
	var conds []string
	var args []any
	if filter.CarModel != "" {
		conds = append(conds, "sa.car_model ILIKE "+arg(&args, like(filter.CarModel)))
	}
	if filter.CarVIN != "" {
		conds = append(conds, "sa.car_vin ILIKE "+arg(&args, like(filter.CarVIN)))
	}
	if filter.CarNumber != "" {
		conds = append(conds, "sa.car_number ILIKE "+arg(&args, like(filter.CarNumber)))
	}
	if filter.Service != "" {
		conds = append(conds, "sa.service ILIKE "+arg(&args, like(filter.Service)))
	}
	if filter.MasterID != "" {
		conds = append(conds, "sa.master_id = "+arg(&args, filter.MasterID))
	}
	if filter.UserID != "" {
		conds = append(conds, "sa.created_by = "+arg(&args, filter.UserID))
	}
	if filter.ProductID != "" {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM sale_items si
			JOIN stock st ON st.id = si.stock_id
			WHERE si.sale_id = sa.id AND st.product_id = `+arg(&args, filter.ProductID)+`)`)
	}
	if filter.FromDate != nil {
		conds = append(conds, "sa.date >= "+arg(&args, *filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "sa.date <= "+arg(&args, *filter.ToDate))
	}
	if filter.FromPrice != nil {
		conds = append(conds, "sa.price >= "+arg(&args, *filter.FromPrice))
	}
	if filter.ToPrice != nil {
		conds = append(conds, "sa.price <= "+arg(&args, *filter.ToPrice))
	}

	from := `
		FROM sales sa
		LEFT JOIN masters m ON m.id = sa.master_id
		JOIN users u ON u.id = sa.created_by` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := `
		SELECT sa.id, sa.date, sa.car_model, sa.car_vin, sa.car_number, sa.master_id,
		       sa.service, sa.price, sa.created_by, sa.created_at,
		       COALESCE(m.name, ''), u.login` + from + `
		ORDER BY sa.date DESC, sa.created_at DESC
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		var masterID *string
		if err := rows.Scan(
			&d.ID, &d.Date, &d.CarModel, &d.CarVIN, &d.CarNumber, &masterID,
			&d.Service, &d.Price, &d.UserID, &d.CreatedAt, &d.MasterName, &d.UserLogin,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		if masterID != nil {
			d.MasterID = *masterID
		}
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
