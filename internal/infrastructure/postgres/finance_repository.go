package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
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

// TransactionRepo ingresos y gastos sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, category, amount, currency, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.UserID, tx.Type, tx.Category, tx.Amount, tx.Currency, tx.Description, tx.Date, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByOwner transacciones con date en [from, to], más recientes primero.
func (r *TransactionRepo) ListByOwner(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, type, category, amount, currency, description, date, created_at
		FROM transactions WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Category, &t.Amount, &t.Currency, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// BudgetRepo presupuestos sobre PostgreSQL. El límite se guarda en la columna amount.
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository construye el adaptador.
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

// Create persiste un presupuesto.
func (r *BudgetRepo) Create(ctx context.Context, b *entity.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category, amount, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, b.ID, b.UserID, b.Category, b.Limit, b.StartDate, b.EndDate, b.CreatedAt); err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// ListByOwner presupuestos del usuario.
func (r *BudgetRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Budget, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, category, amount, start_date, end_date, created_at
		FROM budgets WHERE user_id = $1 ORDER BY start_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Budget, 0)
	for rows.Next() {
		var b entity.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Limit, &b.StartDate, &b.EndDate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GoalRepo metas de ahorro sobre PostgreSQL.
type GoalRepo struct {
	q Querier
}

// NewGoalRepository construye el adaptador.
func NewGoalRepository(q Querier) *GoalRepo {
	return &GoalRepo{q: q}
}

const goalColumns = `id, user_id, name, target, saved, deadline, created_at, updated_at`

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	if err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Target, &g.Saved, &g.Deadline, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create persiste una meta.
func (r *GoalRepo) Create(ctx context.Context, g *entity.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.q.Exec(ctx, query, g.ID, g.UserID, g.Name, g.Target, g.Saved, g.Deadline, g.CreatedAt, g.UpdatedAt); err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// GetByID obtiene una meta por ID.
func (r *GoalRepo) GetByID(ctx context.Context, id string) (*entity.Goal, error) {
	g, err := scanGoal(r.q.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// ListByOwner metas del usuario, más recientes primero.
func (r *GoalRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Goal, error) {
	rows, err := r.q.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// UpdateSaved escribe el monto ahorrado.
func (r *GoalRepo) UpdateSaved(ctx context.Context, id string, saved decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE goals SET saved = $2, updated_at = $3 WHERE id = $1`, id, saved, updatedAt)
	if err != nil {
		return fmt.Errorf("update goal saved: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
