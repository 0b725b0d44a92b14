package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Customer, error)
}
