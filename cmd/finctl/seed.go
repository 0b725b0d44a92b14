package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

// seedRepos repositorios que usa la carga de demo.
type seedRepos struct {
	users        repository.UserRepository
	products     repository.ProductRepository
	transactions repository.TransactionRepository
}

func newSeedCmd(load func() (*config.Config, error)) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea un usuario de demo con productos y transacciones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			r := postgres.NewRepositories(pool)
			userID, err := seedDemo(ctx, cfg, seedRepos{users: r.Users, products: r.Products, transactions: r.Transactions}, email, password, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuario demo %s creado (id %s)\n", email, userID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "demo@finanzas.local", "email del usuario demo")
	cmd.Flags().StringVar(&password, "password", "demo12345", "password del usuario demo")
	return cmd
}

// seedDemo registra el usuario y carga datos de ejemplo del mes de now.
func seedDemo(ctx context.Context, cfg *config.Config, r seedRepos, email, password string, now time.Time) (string, error) {
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	}, cfg.Finance.HomeCurrency)
	user, err := authUC.RegisterUser(ctx, dto.RegisterRequest{Email: email, Password: password, Name: "Demo"})
	if err != nil {
		return "", fmt.Errorf("registrar usuario demo: %w", err)
	}

	f := money.NewFormatter(cfg.Finance.HomeCurrency)
	products := usecase.NewProductUseCase(r.products, f)
	for _, p := range []dto.CreateProductRequest{
		{SKU: "KOPI-250", Name: "Kopi bubuk 250g", Price: money.NewLenient(money.Coerce("35000")), Stock: 40},
		{SKU: "TEH-100", Name: "Teh celup 100", Price: money.NewLenient(money.Coerce("18000")), Stock: 25},
		{SKU: "GULA-1K", Name: "Gula pasir 1kg", Price: money.NewLenient(money.Coerce("16500")), Stock: 60},
	} {
		if _, err := products.Create(ctx, user.ID, p); err != nil {
			return "", fmt.Errorf("crear producto %s: %w", p.SKU, err)
		}
	}

	day := func(d int) string {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	txs := usecase.NewTransactionUseCase(r.transactions, f)
	for _, t := range []dto.CreateTransactionRequest{
		{Type: "income", Category: "ventas", Amount: money.NewLenient(money.Coerce("2500000")), Date: day(1)},
		{Type: "expense", Category: "inventario", Amount: money.NewLenient(money.Coerce("900000")), Date: day(2)},
		{Type: "expense", Category: "servicios", Amount: money.NewLenient(money.Coerce("350000")), Date: day(5)},
	} {
		if _, err := txs.Create(ctx, user.ID, t); err != nil {
			return "", fmt.Errorf("crear transacción: %w", err)
		}
	}
	return user.ID, nil
}
