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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Invoice
}

// NewInvoiceRepository construye el repositorio vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{items: make(map[string]entity.Invoice)}
}

func cloneInvoice(inv entity.Invoice) entity.Invoice {
	inv.Items = append([]entity.InvoiceLineItem(nil), inv.Items...)
	return inv
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[inv.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, other := range r.items {
		if other.UserID == inv.UserID && other.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	r.items[inv.ID] = cloneInvoice(*inv)
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	inv = cloneInvoice(inv)
	return &inv, nil
}

func (r *InvoiceRepo) owned(userID string) []*entity.Invoice {
	r.mu.RLock()
	out := make([]*entity.Invoice, 0)
	for _, inv := range r.items {
		if inv.UserID == userID {
			inv := cloneInvoice(inv)
			out = append(out, &inv)
		}
	}
	r.mu.RUnlock()
	newestFirst(out, func(i *entity.Invoice) time.Time { return i.CreatedAt }, func(i *entity.Invoice) string { return i.ID })
	return out
}

func (r *InvoiceRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return page(r.owned(userID), limit, offset), nil
}

func (r *InvoiceRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return page(r.owned(userID), limit, 0), nil
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.items[id]
	if !ok {
		return fmt.Errorf("update invoice status %s: %w", id, domain.ErrNotFound)
	}
	inv.Status = status
	inv.UpdatedAt = updatedAt
	r.items[id] = inv
	return nil
}
