package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// GoalRepository define el puerto de persistencia para metas de ahorro.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id string) (*entity.Goal, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Goal, error)
	UpdateSaved(ctx context.Context, id string, saved decimal.Decimal, updatedAt time.Time) error
}
