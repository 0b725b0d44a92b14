package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.BudgetRepository      = (*BudgetRepo)(nil)
	_ repository.GoalRepository        = (*GoalRepo)(nil)
)

// TransactionRepo ingresos y gastos en memoria.
type TransactionRepo struct {
	mu    sync.RWMutex
	items []entity.Transaction
}

// NewTransactionRepository construye el repositorio vacío.
func NewTransactionRepository() *TransactionRepo {
	return &TransactionRepo{}
}

func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.items {
		if other.ID == tx.ID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *tx)
	return nil
}

func (r *TransactionRepo) ListByOwner(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*entity.Transaction, 0)
	for _, tx := range r.items {
		if tx.UserID != userID || tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		tx := tx
		out = append(out, &tx)
	}
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// BudgetRepo presupuestos en memoria.
type BudgetRepo struct {
	mu    sync.RWMutex
	items []entity.Budget
}

// NewBudgetRepository construye el repositorio vacío.
func NewBudgetRepository() *BudgetRepo {
	return &BudgetRepo{}
}

func (r *BudgetRepo) Create(ctx context.Context, b *entity.Budget) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *b)
	return nil
}

func (r *BudgetRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Budget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Budget, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			b := b
			out = append(out, &b)
		}
	}
	return out, nil
}

// GoalRepo metas de ahorro en memoria.
type GoalRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Goal
}

// NewGoalRepository construye el repositorio vacío.
func NewGoalRepository() *GoalRepo {
	return &GoalRepo{items: make(map[string]entity.Goal)}
}

func (r *GoalRepo) Create(ctx context.Context, g *entity.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[g.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[g.ID] = *g
	return nil
}

func (r *GoalRepo) GetByID(ctx context.Context, id string) (*entity.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GoalRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*entity.Goal, 0)
	for _, g := range r.items {
		if g.UserID == userID {
			g := g
			out = append(out, &g)
		}
	}
	r.mu.RUnlock()
	newestFirst(out, func(g *entity.Goal) time.Time { return g.CreatedAt }, func(g *entity.Goal) string { return g.ID })
	return out, nil
}

func (r *GoalRepo) UpdateSaved(ctx context.Context, id string, saved decimal.Decimal, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.items[id]
	if !ok {
		return fmt.Errorf("update goal %s: %w", id, domain.ErrNotFound)
	}
	g.Saved = saved
	g.UpdatedAt = updatedAt
	r.items[id] = g
	return nil
}
