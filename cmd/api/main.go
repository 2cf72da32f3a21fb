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

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/auth"
	apporders "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/orders"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/reports"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/usecase"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/excel"
	infrapdf "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/pdf"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/postgres"
	httpRouter "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/interfaces/http"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/interfaces/ws"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/config"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	componentRepo := postgres.NewComponentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cashRepo := postgres.NewCashRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	componentUC := usecase.NewComponentUseCase(componentRepo)
	productUC := usecase.NewProductUseCase(productRepo, componentRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	cashUC := usecase.NewCashUseCase(cashRepo)
	orderUC := apporders.NewUseCase(txRunner, orderRepo, cashRepo, productRepo)
	reportUC := reports.NewMonthlyUseCase(orderRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)

	receipts := infrapdf.NewReceiptGenerator("ARAMI Impresiones")
	exporter := excel.NewReportExporter()

	hub := ws.NewHub(log.With().Str("component", "ws").Logger())
	go hub.Run()

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
		Title:    "ARAMI Impresiones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComponentUC: componentUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		OrderUC:     orderUC,
		CashUC:      cashUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		OrderRepo:   orderRepo,
		Receipts:    receipts,
		Exporter:    exporter,
		Hub:         hub,
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
