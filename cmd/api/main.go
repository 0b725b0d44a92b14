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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/billing"
	"github.com/jhoicas/finanzas-api/internal/application/inventory"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/finanzas-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
	"github.com/jhoicas/finanzas-api/pkg/money"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.close()

	formatter := money.NewFormatter(cfg.Finance.HomeCurrency)

	reconcileUC := inventory.NewReconcileUseCase(store.products, log)
	orderUC := inventory.NewOrderUseCase(store.orders, store.products, store.customers, reconcileUC, formatter)

	numbers := billing.NewNumberGenerator(store.invoices, cfg.Finance.ResetInvoiceMonthly, time.Now, log)
	invoiceUC := billing.NewInvoiceUseCase(
		store.invoices, store.customers, numbers, formatter,
		decimal.NewFromFloat(cfg.Finance.DefaultTaxRate), log,
	)
	customerUC := billing.NewCustomerUseCase(store.customers)

	// PDF: representación imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(store.invoices, store.users, store.customers, pdfGenerator, formatter)

	productUC := usecase.NewProductUseCase(store.products, formatter)
	transactionUC := usecase.NewTransactionUseCase(store.transactions, formatter)
	budgetUC := usecase.NewBudgetUseCase(store.budgets, store.transactions, formatter)
	goalUC := usecase.NewGoalUseCase(store.goals, formatter)
	reportUC := analytics.NewReportUseCase(store.transactions, store.budgets, store.goals, store.invoices, formatter)

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Finance.HomeCurrency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerPath != "" {
		if _, err := os.Stat(cfg.App.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerPath,
				Path:     "docs",
				Title:    "Finanzas API",
			}))
		} else {
			log.Warn().Str("path", cfg.App.SwaggerPath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		InvoiceUC:     invoiceUC,
		PDFUC:         invoicePDFUC,
		OrderUC:       orderUC,
		ReconcileUC:   reconcileUC,
		TransactionUC: transactionUC,
		BudgetUC:      budgetUC,
		GoalUC:        goalUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
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
