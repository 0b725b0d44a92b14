package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (líneas embebidas).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error)
	// ListRecent devuelve las facturas más recientes del usuario ordenadas por created_at DESC.
	// Es la consulta que alimenta el consecutivo INV-YYMM-NNNN.
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
}
