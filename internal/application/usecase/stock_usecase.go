package usecase

import (
	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
)

// reportMaxRows tope de filas del reporte PDF.
const reportMaxRows = 10000

// StockReportGenerator genera el PDF de valorización del stock.
type StockReportGenerator interface {
	StockValuation(lots []*entity.StockLotDetail) ([]byte, error)
}

// StockUseCase consultas de solo lectura sobre el libro de stock. Las
// escrituras pasan exclusivamente por los apliques (arribo, devolución, baja,
// venta).
type StockUseCase struct {
	lots   repository.StockLotRepository
	report StockReportGenerator
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(lots repository.StockLotRepository, report StockReportGenerator) *StockUseCase {
	return &StockUseCase{lots: lots, report: report}
}

// List lista lotes con filtros y paginación.
func (uc *StockUseCase) List(filter repository.StockLotFilter, limit, offset int) ([]dto.StockLotResponse, int, error) {
	list, total, err := uc.lots.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.StockLotResponse, 0, len(list))
	for _, lot := range list {
		out = append(out, dto.StockLotResponse{
			ID:           lot.ID,
			ProductID:    lot.ProductID,
			ProductName:  lot.ProductName,
			SupplierID:   lot.SupplierID,
			SupplierName: lot.SupplierName,
			Price:        lot.Price,
			Quantity:     lot.Quantity,
			UnitID:       lot.UnitID,
			UnitName:     lot.UnitName,
			UpdatedAt:    lot.UpdatedAt,
		})
	}
	return out, total, nil
}

// Report genera el PDF de valorización del stock disponible según el filtro.
func (uc *StockUseCase) Report(filter repository.StockLotFilter) ([]byte, error) {
	list, _, err := uc.lots.List(filter, reportMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.report.StockValuation(list)
}
