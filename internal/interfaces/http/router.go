package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/auth"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/orders"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/reports"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/usecase"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/excel"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/pdf"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComponentUC *usecase.ComponentUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	OrderUC     *orders.UseCase
	CashUC      *usecase.CashUseCase
	ReportUC    *reports.MonthlyUseCase
	AuthUC      *auth.UseCase
	OrderRepo   repository.OrderRepository
	Receipts    *pdf.ReceiptGenerator
	Exporter    *excel.ReportExporter
	Hub         *ws.Hub
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Componentes de costo (protegido)
	components := protected.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Post("/", componentHandler.Create)
	components.Get("/", componentHandler.List)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", componentHandler.Update)
	components.Delete("/:id", componentHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Hub)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Pedidos (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderRepo, deps.Receipts, deps.Hub)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/delivered", orderHandler.ListDelivered)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Post("/:id/collect", orderHandler.Collect)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Caja (protegido, solo alta y lectura)
	cash := protected.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC, deps.Hub)
	cash.Post("/", cashHandler.Append)
	cash.Get("/", cashHandler.List)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Exporter)
	reportsGroup.Get("/monthly", reportHandler.Monthly)

	// Websocket de notificaciones para los tableros.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(deps.Hub.Handler()))
}
