package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lenient decimal que nunca falla al decodificar JSON: "", null, texto no numérico
// o booleanos quedan en cero. Los formularios envían campos vacíos mientras el
// usuario edita y eso no debe romper el cálculo.
type Lenient struct {
	decimal.Decimal
}

// NewLenient envuelve un decimal.
func NewLenient(d decimal.Decimal) Lenient {
	return Lenient{Decimal: d}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (l *Lenient) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		l.Decimal = decimal.Zero
		return nil
	}
	l.Decimal = d
	return nil
}

// Coerce convierte texto de formulario a decimal; cualquier valor inválido es cero.
func Coerce(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
