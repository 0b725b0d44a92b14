package inventory

// Direction sentido de la conciliación de stock.
type Direction string

const (
	// DirectionReduce descuenta stock (orden colocada).
	DirectionReduce Direction = "reduce"
	// DirectionRestore devuelve stock (orden cancelada).
	DirectionRestore Direction = "restore"
)

// DefaultQuantity cantidad asumida cuando la línea no trae una válida.
const DefaultQuantity int64 = 1

// AdjustStock servicio de dominio para el nuevo stock de un producto.
// reduce: max(0, current-quantity); cualquier otro sentido suma.
func AdjustStock(current, quantity int64, dir Direction) int64 {
	if dir == DirectionReduce {
		next := current - quantity
		if next < 0 {
			return 0
		}
		return next
	}
	return current + quantity
}

// NormalizeQuantity aplica DefaultQuantity a cantidades ausentes o no positivas.
func NormalizeQuantity(q int64) int64 {
	if q <= 0 {
		return DefaultQuantity
	}
	return q
}
