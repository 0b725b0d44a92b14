// Package invoice contiene los servicios de dominio de facturación: cálculo de
// líneas y totales, y el consecutivo INV-YYMM-NNNN.
package invoice

import (
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals resumen financiero de una factura.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// LineTotal = quantity * unitPrice. Valores negativos cuentan como 0.
func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	if quantity <= 0 || !unitPrice.IsPositive() {
		return decimal.Zero
	}
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}

// LineTotalFromInput calcula el total de línea desde texto de formulario.
// Entradas vacías o no numéricas valen 0; la cantidad se trunca a entero.
func LineTotalFromInput(quantity, unitPrice string) decimal.Decimal {
	return LineTotal(CoerceQuantity(money.Coerce(quantity)), money.Coerce(unitPrice))
}

// CoerceQuantity trunca a entero no negativo.
func CoerceQuantity(q decimal.Decimal) int64 {
	n := q.IntPart()
	if n < 0 {
		return 0
	}
	return n
}

// ComputeTotals agrega las líneas tal como vienen:
//
//	subtotal = Σ line.Total
//	tax      = subtotal * taxRatePercent / 100
//	total    = max(0, subtotal + tax - discount)
//
// Un descuento mayor que subtotal+tax se absorbe: el total nunca es negativo.
func ComputeTotals(lines []entity.InvoiceLineItem, taxRatePercent, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Total.IsPositive() {
			subtotal = subtotal.Add(l.Total)
		}
	}
	if taxRatePercent.IsNegative() {
		taxRatePercent = decimal.Zero
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	tax := subtotal.Mul(taxRatePercent).Div(hundred)
	total := subtotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{Subtotal: subtotal, Tax: tax, Discount: discount, Total: total}
}

// Draft estado editable de una factura antes de guardarla.
type Draft struct {
	Lines    []entity.InvoiceLineItem
	TaxRate  decimal.Decimal
	Discount decimal.Decimal
}

// Recalculate recalcula el total de cada línea y luego los totales, en una sola
// pasada sobre el mismo estado. Se invoca una vez después de aplicar todas las
// ediciones; ningún total refleja una edición parcial.
func (d *Draft) Recalculate() Totals {
	for i := range d.Lines {
		l := &d.Lines[i]
		if l.Quantity < 0 {
			l.Quantity = 0
		}
		if l.UnitPrice.IsNegative() {
			l.UnitPrice = decimal.Zero
		}
		l.Total = LineTotal(l.Quantity, l.UnitPrice)
	}
	return ComputeTotals(d.Lines, d.TaxRate, d.Discount)
}
