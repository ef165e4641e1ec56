package stock

import (
	"context"

	"github.com/dcastano/taller-api/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción. Los casos de uso del
// libro de stock nunca abren transacciones propias: reciben estos repos ya
// atados y trabajan dentro de la unidad de trabajo que les dieron.
type TxRepos struct {
	Arrivals  repository.ArrivalRepository
	Returns   repository.ProductReturnRepository
	Disposals repository.DisposalRepository
	Sales     repository.SaleRepository
	Lots      repository.StockLotRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción entera se revierte; si devuelve nil se confirma. Es la única
// frontera transaccional del sistema.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
