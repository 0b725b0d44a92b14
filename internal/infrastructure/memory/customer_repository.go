package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Customer
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: make(map[string]entity.Customer)}
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = *c
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*entity.Customer, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			c := c
			out = append(out, &c)
		}
	}
	r.mu.RUnlock()
	newestFirst(out, func(c *entity.Customer) time.Time { return c.CreatedAt }, func(c *entity.Customer) string { return c.ID })
	return page(out, limit, offset), nil
}
