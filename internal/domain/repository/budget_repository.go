package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// BudgetRepository define el puerto de persistencia para presupuestos.
type BudgetRepository interface {
	Create(ctx context.Context, budget *entity.Budget) error
	ListByOwner(ctx context.Context, userID string) ([]*entity.Budget, error)
}
