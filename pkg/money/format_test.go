package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency_MonedaLocalSinDecimales(t *testing.T) {
	assert.Equal(t, "Rp 25.000", FormatCurrency(decimal.NewFromInt(25000), "IDR"))
	assert.Equal(t, "Rp 1.000.000", FormatCurrency(decimal.NewFromInt(1000000), "idr"))
	assert.Equal(t, "Rp 26.751", FormatCurrency(decimal.RequireFromString("26750.5"), "IDR"), "se redondea al entero")
	assert.Equal(t, "-Rp 500", FormatCurrency(decimal.NewFromInt(-500), "IDR"))
}

func TestFormatCurrency_OtraMonedaDosDecimales(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(decimal.RequireFromString("1234.5"), "USD"))
	assert.Equal(t, "€10.00", FormatCurrency(decimal.NewFromInt(10), "EUR"))
	assert.Equal(t, "CHF 7.25", FormatCurrency(decimal.RequireFromString("7.25"), "CHF"))
}

func TestFormatter_HomeConfigurable(t *testing.T) {
	f := NewFormatter("USD")
	assert.Equal(t, "$ 1,235", f.FormatCurrency(decimal.RequireFromString("1234.5"), "USD"))
	assert.Equal(t, "Rp25,000.00", f.FormatCurrency(decimal.NewFromInt(25000), "IDR"))
}

func TestParseCurrency_Inversa(t *testing.T) {
	cases := []struct {
		in   string
		code string
		want string
	}{
		{"Rp 25.000", "IDR", "25000"},
		{"Rp 1.000.000", "IDR", "1000000"},
		{"$1,234.50", "USD", "1234.5"},
		{"€10.00", "EUR", "10"},
		{"-Rp 500", "IDR", "-500"},
	}
	for _, tc := range cases {
		got, err := ParseCurrency(tc.in, tc.code)
		require.NoError(t, err, tc.in)
		assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "%q -> %s", tc.in, got)
	}
}

func TestParseCurrency_Invalido(t *testing.T) {
	_, err := ParseCurrency("Rp ", "IDR")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseCurrency("abc", "USD")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormatProgress(t *testing.T) {
	d := decimal.NewFromInt
	assert.Equal(t, 50, FormatProgress(d(50), d(100)))
	assert.Equal(t, 100, FormatProgress(d(150), d(100)), "se acota a 100")
	assert.Equal(t, 0, FormatProgress(d(-20), d(100)), "se acota a 0")
	assert.Equal(t, 33, FormatProgress(d(1), d(3)))
	assert.Equal(t, 67, FormatProgress(d(2), d(3)))
	assert.NotPanics(t, func() {
		assert.Equal(t, 0, FormatProgress(d(0), d(0)), "target cero no divide")
	})
	assert.Equal(t, 0, FormatProgress(d(10), d(-5)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(50))
}

func TestLenient_Unmarshal(t *testing.T) {
	var body struct {
		A Lenient `json:"a"`
		B Lenient `json:"b"`
		C Lenient `json:"c"`
		D Lenient `json:"d"`
		E Lenient `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"", "b":"abc", "c":12.5, "d":"7", "e":null}`), &body)
	require.NoError(t, err)

	assert.True(t, body.A.IsZero())
	assert.True(t, body.B.IsZero())
	assert.Equal(t, "12.5", body.C.String())
	assert.Equal(t, "7", body.D.String())
	assert.True(t, body.E.IsZero())
}

func TestCoerce(t *testing.T) {
	assert.True(t, Coerce("").IsZero())
	assert.True(t, Coerce("diez").IsZero())
	assert.Equal(t, "10000", Coerce(" 10000 ").String())
}
