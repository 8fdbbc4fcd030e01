package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/balance"
	"github.com/tu-usuario/gestion-pro/internal/application/finance"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/application/summary"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockCoordinator   *stock.Coordinator
	BalanceCoordinator *balance.Coordinator
	SummaryAggregator  *summary.Aggregator
	FinanceUC          *finance.UseCase
	JWTSecret          string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token emitido por el backend)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockCoordinator)
	stockGroup.Post("/validate", stockHandler.Validate)
	stockGroup.Post("/deduct", stockHandler.Deduct)
	stockGroup.Post("/add", stockHandler.Add)
	stockGroup.Post("/bulk", stockHandler.Bulk)
	stockGroup.Get("/alerts", stockHandler.Alerts)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Get("/:productId", stockHandler.CurrentStock)

	// Pedidos: transiciones de estado y método de pago (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.StockCoordinator, deps.BalanceCoordinator)
	orders.Post("/:id/status", orderHandler.ChangeStatus)
	orders.Post("/:id/payment-method", orderHandler.ChangePaymentMethod)

	// Saldos de clientes (protegido)
	customers := protected.Group("/customers")
	balanceHandler := NewBalanceHandler(deps.BalanceCoordinator)
	customers.Post("/balance/sync", RequireRole("admin"), balanceHandler.SyncAll)
	customers.Get("/:id/balance", balanceHandler.GetBalance)
	customers.Post("/:id/payments", balanceHandler.RecordPayment)
	customers.Get("/:id/transactions", balanceHandler.GetTransactions)

	// Dashboard y reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.SummaryAggregator, deps.FinanceUC)
	protected.Get("/inventory/summary", dashboardHandler.GetInventorySummary)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/reports/daily", dashboardHandler.GetDailyReport)
	protected.Get("/reports/monthly", dashboardHandler.GetMonthlyReport)
	protected.Get("/reports/:name", dashboardHandler.GetReport)

	// Finanzas y settings (protegido)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	protected.Post("/finance/expenses", financeHandler.CreateExpense)
	protected.Get("/settings", financeHandler.GetSettings)
	protected.Put("/settings", RequireRole("admin"), financeHandler.UpdateSettings)
}
