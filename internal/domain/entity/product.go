package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del punto de venta.
// Stock es un entero no negativo; solo lo modifica la conciliación de inventario
// o una edición explícita del dueño.
type Product struct {
	ID          string
	UserID      string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
