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
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Las líneas viven en la columna JSONB products.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, customer_id, products, total, status, payment_method, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o          entity.Order
		customerID *string
	)
	if err := row.Scan(&o.ID, &o.UserID, &customerID, &o.Products, &o.Total, &o.Status, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.CustomerID = derefString(customerID)
	return &o, nil
}

// Create persiste la orden con sus líneas.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	lines := order.Products
	if lines == nil {
		lines = []entity.OrderLine{}
	}
	query := `INSERT INTO orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, nullIfEmpty(order.CustomerID), lines, order.Total,
		order.Status, order.PaymentMethod, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListByOwner lista órdenes del usuario, más recientes primero.
func (r *OrderRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden si todavía está en from.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, from, to string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from, to, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update order status %s: %w: ya no está %s", id, domain.ErrConflict, from)
	}
	return nil
}
