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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]entity.Product)}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if p.SKU != "" {
		for _, other := range r.items {
			if other.UserID == p.UserID && other.SKU == p.SKU {
				return domain.ErrDuplicate
			}
		}
	}
	r.items[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*entity.Product, 0)
	for _, p := range r.items {
		if p.UserID == userID {
			p := p
			out = append(out, &p)
		}
	}
	r.mu.RUnlock()
	newestFirst(out, func(p *entity.Product) time.Time { return p.CreatedAt }, func(p *entity.Product) string { return p.ID })
	return page(out, limit, offset), nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return fmt.Errorf("update product %s: %w", p.ID, domain.ErrNotFound)
	}
	r.items[p.ID] = *p
	return nil
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return fmt.Errorf("update stock %s: %w", id, domain.ErrNotFound)
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	r.items[id] = p
	return nil
}
