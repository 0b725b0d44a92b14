package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes en memoria.
type OrderRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{items: make(map[string]entity.Order)}
}

func cloneOrder(o entity.Order) entity.Order {
	o.Products = append([]entity.OrderLine(nil), o.Products...)
	return o
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[o.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*entity.Order, 0)
	for _, o := range r.items {
		if o.UserID == userID {
			o := cloneOrder(o)
			out = append(out, &o)
		}
	}
	r.mu.RUnlock()
	newestFirst(out, func(o *entity.Order) time.Time { return o.CreatedAt }, func(o *entity.Order) string { return o.ID })
	return page(out, limit, offset), nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, from, to string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return fmt.Errorf("update order status %s: %w", id, domain.ErrNotFound)
	}
	if o.Status != from {
		return fmt.Errorf("update order status %s: %w: ya no está %s", id, domain.ErrConflict, from)
	}
	o.Status = to
	o.UpdatedAt = updatedAt
	r.items[id] = o
	return nil
}
