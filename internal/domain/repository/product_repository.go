package repository

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByOwner(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock escribe solo el campo stock (usado por la conciliación de inventario).
	UpdateStock(ctx context.Context, id string, stock int64) error
}
