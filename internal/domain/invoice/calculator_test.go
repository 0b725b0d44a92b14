package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLineTotal(t *testing.T) {
	cases := []struct {
		qty   int64
		price string
		want  string
	}{
		{2, "10000", "20000"},
		{1, "5000", "5000"},
		{0, "5000", "0"},
		{3, "0.5", "1.5"},
		{-1, "100", "0"},
		{4, "-2", "0"},
	}
	for _, tc := range cases {
		got := invoice.LineTotal(tc.qty, dec(tc.price))
		assert.True(t, dec(tc.want).Equal(got), "%d x %s = %s", tc.qty, tc.price, got)
	}
}

func TestLineTotalFromInput_EntradaInvalidaEsCero(t *testing.T) {
	assert.True(t, invoice.LineTotalFromInput("", "10000").IsZero())
	assert.True(t, invoice.LineTotalFromInput("dos", "10000").IsZero())
	assert.True(t, invoice.LineTotalFromInput("2", "").IsZero())
	assert.Equal(t, "20000", invoice.LineTotalFromInput("2", "10000").String())
	assert.Equal(t, "20000", invoice.LineTotalFromInput("2.9", "10000").String(), "cantidad se trunca")
}

func TestComputeTotals_EjemploCompleto(t *testing.T) {
	d := invoice.Draft{
		Lines: []entity.InvoiceLineItem{
			{Description: "Consultoría", Quantity: 2, UnitPrice: dec("10000")},
			{Description: "Soporte", Quantity: 1, UnitPrice: dec("5000")},
		},
		TaxRate:  dec("11"),
		Discount: dec("1000"),
	}
	tot := d.Recalculate()

	assert.Equal(t, "25000", tot.Subtotal.String())
	assert.Equal(t, "2750", tot.Tax.String())
	assert.Equal(t, "1000", tot.Discount.String())
	assert.Equal(t, "26750", tot.Total.String())
	assert.Equal(t, "20000", d.Lines[0].Total.String(), "la línea queda recalculada")
}

func TestComputeTotals_DescuentoMayorQueTotal(t *testing.T) {
	lines := []entity.InvoiceLineItem{{Quantity: 1, UnitPrice: dec("100"), Total: dec("100")}}
	tot := invoice.ComputeTotals(lines, dec("10"), dec("500"))

	assert.True(t, tot.Total.IsZero(), "el total nunca es negativo")
	assert.Equal(t, "110", tot.Subtotal.Add(tot.Tax).String())
}

func TestComputeTotals_Propiedad(t *testing.T) {
	// total == max(0, Σ + Σ*r/100 - d) y total >= 0
	rates := []string{"0", "5", "11", "12.5"}
	discounts := []string{"0", "10", "99999"}
	lines := []entity.InvoiceLineItem{
		{Quantity: 3, UnitPrice: dec("333"), Total: dec("999")},
		{Quantity: 1, UnitPrice: dec("1"), Total: dec("1")},
	}
	sum := dec("1000")
	for _, r := range rates {
		for _, d := range discounts {
			tot := invoice.ComputeTotals(lines, dec(r), dec(d))
			want := sum.Add(sum.Mul(dec(r)).Div(decimal.NewFromInt(100))).Sub(dec(d))
			if want.IsNegative() {
				want = decimal.Zero
			}
			assert.True(t, want.Equal(tot.Total), "r=%s d=%s", r, d)
			assert.False(t, tot.Total.IsNegative())
		}
	}
}

func TestComputeTotals_ValoresNegativosSeIgnoran(t *testing.T) {
	lines := []entity.InvoiceLineItem{
		{Total: dec("-50")},
		{Total: dec("200")},
	}
	tot := invoice.ComputeTotals(lines, dec("-5"), dec("-10"))
	assert.Equal(t, "200", tot.Subtotal.String())
	assert.True(t, tot.Tax.IsZero())
	assert.True(t, tot.Discount.IsZero())
	assert.Equal(t, "200", tot.Total.String())
}

func TestDraft_RecalculateIgnoraTotalDeEntrada(t *testing.T) {
	d := invoice.Draft{Lines: []entity.InvoiceLineItem{
		{Quantity: 2, UnitPrice: dec("50"), Total: dec("999999")},
	}}
	tot := d.Recalculate()
	assert.Equal(t, "100", tot.Subtotal.String())
}
