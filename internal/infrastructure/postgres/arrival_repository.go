package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

var _ repository.ArrivalRepository = (*ArrivalRepo)(nil)

// ArrivalRepo implementación de ArrivalRepository (usable con pool o tx).
type ArrivalRepo struct {
	q Querier
}

// NewArrivalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArrivalRepository(q Querier) *ArrivalRepo {
	return &ArrivalRepo{q: q}
}

// Create persiste un arribo.
func (r *ArrivalRepo) Create(arrival *entity.Arrival) error {
	query := `
		INSERT INTO arrivals (id, supplier_id, invoice_number, date, manufacturer, product_id,
		                      count, unit_id, purchase_price, retail_price, info, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		arrival.ID, arrival.SupplierID, arrival.InvoiceNumber, arrival.Date, arrival.Manufacturer,
		arrival.ProductID, arrival.Count, arrival.UnitID, arrival.PurchasePrice, arrival.RetailPrice,
		arrival.Info, int(arrival.Status), arrival.UserID, arrival.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert arrival: %w", err)
	}
	return nil
}

// GetByID obtiene un arribo por id. nil, nil si no existe.
func (r *ArrivalRepo) GetByID(id string) (*entity.Arrival, error) {
	query := `
		SELECT id, supplier_id, invoice_number, date, manufacturer, product_id,
		       count, unit_id, purchase_price, retail_price, info, status, created_by, created_at
		FROM arrivals WHERE id = $1`
	var a entity.Arrival
	var status int
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.SupplierID, &a.InvoiceNumber, &a.Date, &a.Manufacturer, &a.ProductID,
		&a.Count, &a.UnitID, &a.PurchasePrice, &a.RetailPrice, &a.Info, &status, &a.UserID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get arrival: %w", err)
	}
	a.Status = entity.ArrivalStatus(status)
	return &a, nil
}

// Update escribe solo los campos administrativos. Count y precios no se
// tocan: el arribo es historia del libro de stock.
func (r *ArrivalRepo) Update(arrival *entity.Arrival) error {
	query := `
		UPDATE arrivals
		SET invoice_number = $2, manufacturer = $3, info = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		arrival.ID, arrival.InvoiceNumber, arrival.Manufacturer, arrival.Info, int(arrival.Status))
	if err != nil {
		return fmt.Errorf("update arrival: %w", err)
	}
	return nil
}

// List lista arribos con nombres resueltos, filtros y total.
func (r *ArrivalRepo) List(filter repository.ArrivalFilter, limit, offset int) ([]*entity.ArrivalDetail, int, error) {
	var conds []string
	var args []any
	if filter.SupplierID != "" {
		conds = append(conds, "a.supplier_id = "+arg(&args, filter.SupplierID))
	}
	if filter.ProductID != "" {
		conds = append(conds, "a.product_id = "+arg(&args, filter.ProductID))
	}
	if filter.UnitID != "" {
		conds = append(conds, "a.unit_id = "+arg(&args, filter.UnitID))
	}
	if filter.InvoiceNumber != "" {
		conds = append(conds, "a.invoice_number ILIKE "+arg(&args, like(filter.InvoiceNumber)))
	}
	if filter.Manufacturer != "" {
		conds = append(conds, "a.manufacturer ILIKE "+arg(&args, like(filter.Manufacturer)))
	}
	if filter.Info != "" {
		conds = append(conds, "a.info ILIKE "+arg(&args, like(filter.Info)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "a.date >= "+arg(&args, *filter.FromDate))
	}
	if filter.ToDate != nil {
		conds = append(conds, "a.date <= "+arg(&args, *filter.ToDate))
	}
	if filter.FromPurchasePrice != nil {
		conds = append(conds, "a.purchase_price >= "+arg(&args, *filter.FromPurchasePrice))
	}
	if filter.ToPurchasePrice != nil {
		conds = append(conds, "a.purchase_price <= "+arg(&args, *filter.ToPurchasePrice))
	}
	if filter.FromRetailPrice != nil {
		conds = append(conds, "a.retail_price >= "+arg(&args, *filter.FromRetailPrice))
	}
	if filter.ToRetailPrice != nil {
		conds = append(conds, "a.retail_price <= "+arg(&args, *filter.ToRetailPrice))
	}
	if filter.Status != nil {
		conds = append(conds, "a.status = "+arg(&args, int(*filter.Status)))
	}

	from := `
		FROM arrivals a
		JOIN products p ON p.id = a.product_id
		JOIN suppliers s ON s.id = a.supplier_id
		JOIN units u ON u.id = a.unit_id` + whereClause(conds)

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*)"+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count arrivals: %w", err)
	}

	query := `
		SELECT a.id, a.supplier_id, a.invoice_number, a.date, a.manufacturer, a.product_id,
		       a.count, a.unit_id, a.purchase_price, a.retail_price, a.info, a.status,
		       a.created_by, a.created_at, p.name, s.name, u.name` + from + `
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT ` + arg(&args, limit) + ` OFFSET ` + arg(&args, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list arrivals: %w", err)
	}
	defer rows.Close()

	var out []*entity.ArrivalDetail
	for rows.Next() {
		var d entity.ArrivalDetail
		var status int
		if err := rows.Scan(
			&d.ID, &d.SupplierID, &d.InvoiceNumber, &d.Date, &d.Manufacturer, &d.ProductID,
			&d.Count, &d.UnitID, &d.PurchasePrice, &d.RetailPrice, &d.Info, &status,
			&d.UserID, &d.CreatedAt, &d.ProductName, &d.SupplierName, &d.UnitName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan arrival: %w", err)
		}
		d.Status = entity.ArrivalStatus(status)
		out = append(out, &d)
	}
	return out, total, rows.Err()
}
