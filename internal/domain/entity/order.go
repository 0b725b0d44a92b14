package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden del punto de venta.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderLine producto y cantidad de una orden. Inmutable una vez colocada la orden.
// ID se acepta como alias de ProductID porque algunos clientes envían la línea
// con la forma del producto ({id, quantity}).
type OrderLine struct {
	ProductID string `json:"product_id,omitempty"`
	ID        string `json:"id,omitempty"`
	Quantity  int64  `json:"quantity"`
}

// ResolvedProductID devuelve ProductID o, en su defecto, ID.
func (l OrderLine) ResolvedProductID() string {
	if l.ProductID != "" {
		return l.ProductID
	}
	return l.ID
}

// Order venta del punto de venta.
type Order struct {
	ID            string
	UserID        string
	CustomerID    string
	Products      []OrderLine
	Total         decimal.Decimal
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
