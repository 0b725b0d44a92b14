package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

// OrderLines colección de líneas recibida como JSON crudo. Se decodifica de
// forma tolerante: una línea ilegible queda sin producto y la conciliación la
// salta; una colección que no es arreglo devuelve nil.
type OrderLines json.RawMessage

// MarshalJSON implementa json.Marshaler.
func (l OrderLines) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return l, nil
}

// UnmarshalJSON implementa json.Unmarshaler sin fallar nunca.
func (l *OrderLines) UnmarshalJSON(b []byte) error {
	*l = append((*l)[0:0], b...)
	return nil
}

type lenientLine struct {
	ProductID string        `json:"product_id"`
	ID        string        `json:"id"`
	Quantity  money.Lenient `json:"quantity"`
}

// Lines decodifica las líneas. nil indica que la colección está ausente o mal formada.
func (l OrderLines) Lines() []entity.OrderLine {
	raw := strings.TrimSpace(string(l))
	if raw == "" || raw == "null" {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	out := make([]entity.OrderLine, 0, len(items))
	for _, it := range items {
		var ll lenientLine
		if err := json.Unmarshal(it, &ll); err != nil {
			out = append(out, entity.OrderLine{})
			continue
		}
		out = append(out, entity.OrderLine{
			ProductID: ll.ProductID,
			ID:        ll.ID,
			Quantity:  ll.Quantity.IntPart(),
		})
	}
	return out
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID    string     `json:"customer_id,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Products      OrderLines `json:"products"`
}

// OrderResponse orden en respuestas.
type OrderResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Products      []entity.OrderLine `json:"products"`
	Total         decimal.Decimal    `json:"total"`
	TotalDisplay  string             `json:"total_display"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// OrderTransitionResponse resultado de colocar o cancelar una orden.
type OrderTransitionResponse struct {
	Order     OrderResponse     `json:"order"`
	Reconcile ReconcileResponse `json:"reconcile"`
}

// ReconcileRequest body para POST /api/inventory/reconcile.
type ReconcileRequest struct {
	Direction string     `json:"direction"` // reduce | restore
	Products  OrderLines `json:"products"`
}

// StockChangeResponse cambio aplicado a un producto.
type StockChangeResponse struct {
	ProductID string `json:"product_id"`
	Before    int64  `json:"before"`
	After     int64  `json:"after"`
}

// SkippedLineResponse línea no aplicada y su motivo.
type SkippedLineResponse struct {
	ProductID string `json:"product_id,omitempty"`
	Reason    string `json:"reason"`
}

// ReconcileResponse reporte de conciliación.
type ReconcileResponse struct {
	Applied []StockChangeResponse `json:"applied"`
	Skipped []SkippedLineResponse `json:"skipped"`
	Notice  string                `json:"notice,omitempty"`
}
