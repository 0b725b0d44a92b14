package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error)
	// UpdateStatus cambia el estado solo si la orden sigue en from; si no, ErrConflict.
	UpdateStatus(ctx context.Context, id, from, to string, updatedAt time.Time) error
}
