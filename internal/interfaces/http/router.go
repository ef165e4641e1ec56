package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/taller-api/internal/application/auth"
	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	UnitUC      *usecase.UnitUseCase
	MasterUC    *usecase.MasterUseCase
	InventoryUC *usecase.InventoryUseCase
	StockUC     *usecase.StockUseCase
	ArrivalUC   *appstock.ArrivalUseCase
	ReturnUC    *appstock.ReturnUseCase
	DisposalUC  *appstock.DisposalUseCase
	SaleUC      *appstock.SaleUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Todo lo demás requiere Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos (protegido)
	registerCatalog(protected, "/products", NewCatalogHandler(deps.ProductUC, "producto no encontrado"))
	registerCatalog(protected, "/suppliers", NewCatalogHandler(deps.SupplierUC, "proveedor no encontrado"))
	registerCatalog(protected, "/units", NewCatalogHandler(deps.UnitUC, "unidad no encontrada"))

	// Maestros (protegido)
	masters := protected.Group("/masters")
	masterHandler := NewMasterHandler(deps.MasterUC)
	masters.Post("/", masterHandler.Create)
	masters.Get("/", masterHandler.List)
	masters.Get("/:id", masterHandler.GetByID)
	masters.Put("/:id", masterHandler.Update)

	// Arribos (protegido)
	arrivals := protected.Group("/arrivals")
	arrivalHandler := NewArrivalHandler(deps.ArrivalUC)
	arrivals.Post("/", arrivalHandler.Create)
	arrivals.Get("/", arrivalHandler.List)
	arrivals.Get("/:id", arrivalHandler.GetByID)
	arrivals.Put("/:id", arrivalHandler.Update)

	// Devoluciones a proveedor (protegido)
	returns := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)
	returns.Get("/:id", returnHandler.GetByID)
	returns.Put("/:id", returnHandler.Update)
	returns.Delete("/:id", returnHandler.Delete)
	returns.Post("/:id/spend", returnHandler.Spend)

	// Bajas de stock (protegido)
	disposals := protected.Group("/disposals")
	disposalHandler := NewDisposalHandler(deps.DisposalUC)
	disposals.Post("/", disposalHandler.Create)
	disposals.Get("/", disposalHandler.List)
	disposals.Get("/:id", disposalHandler.GetByID)

	// Ventas (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Actas de inventario (protegido)
	inventories := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", inventoryHandler.Update)

	// Libro de stock (protegido, solo lectura)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/report", stockHandler.Report)
}

func registerCatalog(g fiber.Router, prefix string, h *CatalogHandler) {
	grp := g.Group(prefix)
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Put("/:id", h.Update)
}
