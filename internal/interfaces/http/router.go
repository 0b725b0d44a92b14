package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/billing"
	"github.com/jhoicas/finanzas-api/internal/application/inventory"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *billing.CustomerUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PDFUC         *billing.PDFUseCase
	OrderUC       *inventory.OrderUseCase
	ReconcileUC   *inventory.ReconcileUseCase
	TransactionUC *usecase.TransactionUseCase
	BudgetUC      *usecase.BudgetUseCase
	GoalUC        *usecase.GoalUseCase
	ReportUC      *analytics.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", requireAuth)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Orders + conciliación de inventario
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/place", orderHandler.Place)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	inventoryHandler := NewInventoryHandler(deps.ReconcileUC)
	protected.Post("/inventory/reconcile", inventoryHandler.Reconcile)

	// Invoices: rutas fijas antes de /:id
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Get("/next-number", invoiceHandler.NextNumber)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	financeHandler := NewFinanceHandler(deps.TransactionUC, deps.BudgetUC, deps.GoalUC)
	protected.Post("/transactions", financeHandler.CreateTransaction)
	protected.Get("/transactions", financeHandler.ListTransactions)
	protected.Post("/budgets", financeHandler.CreateBudget)
	protected.Get("/budgets", financeHandler.ListBudgets)
	protected.Post("/goals", financeHandler.CreateGoal)
	protected.Get("/goals", financeHandler.ListGoals)
	protected.Post("/goals/:id/contributions", financeHandler.Contribute)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/summary", reportHandler.Summary)
}
