package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// storage juego de repositorios elegido por STORAGE_DRIVER.
type storage struct {
	users        repository.UserRepository
	products     repository.ProductRepository
	customers    repository.CustomerRepository
	orders       repository.OrderRepository
	invoices     repository.InvoiceRepository
	transactions repository.TransactionRepository
	budgets      repository.BudgetRepository
	goals        repository.GoalRepository
	close        func()
}

// openStorage conecta el backend configurado. Con postgres aplica migraciones si DB_AUTO_MIGRATE=true.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		r := memory.New()
		return &storage{
			users: r.Users, products: r.Products, customers: r.Customers, orders: r.Orders,
			invoices: r.Invoices, transactions: r.Transactions, budgets: r.Budgets, goals: r.Goals,
			close: func() {},
		}, nil
	}

	if cfg.Storage.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	r := postgres.NewRepositories(pool)
	return &storage{
		users: r.Users, products: r.Products, customers: r.Customers, orders: r.Orders,
		invoices: r.Invoices, transactions: r.Transactions, budgets: r.Budgets, goals: r.Goals,
		close: pool.Close,
	}, nil
}
