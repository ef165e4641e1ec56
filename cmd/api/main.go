package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dcastano/taller-api/internal/application/auth"
	appstock "github.com/dcastano/taller-api/internal/application/stock"
	"github.com/dcastano/taller-api/internal/application/usecase"
	infrapdf "github.com/dcastano/taller-api/internal/infrastructure/pdf"
	"github.com/dcastano/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/dcastano/taller-api/internal/interfaces/http"
	"github.com/dcastano/taller-api/pkg/config"
	"github.com/dcastano/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	masterRepo := postgres.NewMasterRepository(pool)
	stockRepo := postgres.NewStockLotRepository(pool)
	arrivalRepo := postgres.NewArrivalRepository(pool)
	returnRepo := postgres.NewProductReturnRepository(pool)
	disposalRepo := postgres.NewDisposalRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	masterUC := usecase.NewMasterUseCase(masterRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)

	// PDF: valorización del stock a precio de venta
	reportGenerator := infrapdf.NewStockReportGenerator()
	stockUC := usecase.NewStockUseCase(stockRepo, reportGenerator)

	arrivalUC := appstock.NewArrivalUseCase(txRunner, arrivalRepo, supplierRepo, productRepo, unitRepo)
	returnUC := appstock.NewReturnUseCase(txRunner, returnRepo, supplierRepo, productRepo)
	disposalUC := appstock.NewDisposalUseCase(txRunner, disposalRepo)
	saleUC := appstock.NewSaleUseCase(txRunner, saleRepo, masterRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		UnitUC:      unitUC,
		MasterUC:    masterUC,
		InventoryUC: inventoryUC,
		StockUC:     stockUC,
		ArrivalUC:   arrivalUC,
		ReturnUC:    returnUC,
		DisposalUC:  disposalUC,
		SaleUC:      saleUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
