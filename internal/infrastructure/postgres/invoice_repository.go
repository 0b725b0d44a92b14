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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Las líneas se guardan como JSONB en items; los totales en columnas NUMERIC.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, user_id, customer_id, invoice_number, items, currency, subtotal, tax_rate, tax, discount, total,
	status, notes, issue_date, due_date, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv        entity.Invoice
		customerID *string
	)
	err := row.Scan(
		&inv.ID, &inv.UserID, &customerID, &inv.InvoiceNumber, &inv.Items, &inv.Currency,
		&inv.Subtotal, &inv.TaxRate, &inv.Tax, &inv.Discount, &inv.Total,
		&inv.Status, &inv.Notes, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.CustomerID = derefString(customerID)
	return &inv, nil
}

// Create persiste la factura con sus líneas.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	items := invoice.Items
	if items == nil {
		items = []entity.InvoiceLineItem{}
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.UserID, nullIfEmpty(invoice.CustomerID), invoice.InvoiceNumber, items, invoice.Currency,
		invoice.Subtotal, invoice.TaxRate, invoice.Tax, invoice.Discount, invoice.Total,
		invoice.Status, invoice.Notes, invoice.IssueDate, invoice.DueDate, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByOwner lista facturas del usuario con paginación, más recientes primero.
func (r *InvoiceRepo) ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
}

// ListRecent devuelve las limit facturas más recientes del usuario.
func (r *InvoiceRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		userID, limit)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateStatus cambia solo el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1`, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update invoice status %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
