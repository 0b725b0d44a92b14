package repository

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para ingresos y gastos.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	// ListByOwner devuelve las transacciones con Date en [from, to], más recientes primero.
	ListByOwner(ctx context.Context, userID string, from, to time.Time) ([]*entity.Transaction, error)
}
