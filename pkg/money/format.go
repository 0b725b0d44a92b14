// Package money formatea y convierte montos para mostrarlos al usuario.
//
// La moneda local (por defecto IDR) se muestra sin decimales y con separador de
// miles del locale; cualquier otra moneda usa dos decimales y su propio símbolo.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidAmount monto no interpretable.
var ErrInvalidAmount = errors.New("monto inválido")

var symbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"SGD": "S$",
	"MYR": "RM",
	"AUD": "A$",
	"COP": "COL$",
}

// Formatter conoce la moneda local y su locale.
type Formatter struct {
	Home       string
	HomeLocale language.Tag
}

// Default formatter: rupia indonesia.
var Default = NewFormatter("IDR")

// NewFormatter construye un Formatter para la moneda local dada.
func NewFormatter(home string) *Formatter {
	home = normalizeCode(home)
	return &Formatter{Home: home, HomeLocale: localeFor(home)}
}

func localeFor(code string) language.Tag {
	switch code {
	case "IDR":
		return language.Indonesian
	case "EUR":
		return language.German
	case "COP":
		return language.LatinAmericanSpanish
	default:
		return language.English
	}
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}

// Symbol devuelve el símbolo de la moneda o el código ISO si no se conoce.
func Symbol(code string) string {
	code = normalizeCode(code)
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// FormatCurrency usa el formatter por defecto.
func FormatCurrency(amount decimal.Decimal, code string) string {
	return Default.FormatCurrency(amount, code)
}

// ParseCurrency usa el formatter por defecto.
func ParseCurrency(display, code string) (decimal.Decimal, error) {
	return Default.ParseCurrency(display, code)
}

// FormatCurrency convierte un monto a texto.
//
//	FormatCurrency(25000, "IDR")  -> "Rp 25.000"
//	FormatCurrency(1234.5, "USD") -> "$1,234.50"
func (f *Formatter) FormatCurrency(amount decimal.Decimal, code string) string {
	code = normalizeCode(code)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	if code == f.Home {
		p := message.NewPrinter(f.HomeLocale)
		digits := p.Sprint(number.Decimal(amount.Round(0).IntPart()))
		return sign + Symbol(code) + " " + digits
	}

	p := message.NewPrinter(language.English)
	value, _ := amount.Round(2).Float64()
	digits := p.Sprint(number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	sym, known := symbols[code]
	if !known {
		return sign + code + " " + digits
	}
	return sign + sym + digits
}

// ParseCurrency es la inversa de FormatCurrency.
func (f *Formatter) ParseCurrency(display, code string) (decimal.Decimal, error) {
	code = normalizeCode(code)
	s := strings.TrimSpace(display)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, Symbol(code))
	s = strings.TrimPrefix(s, code)
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	if code == f.Home && groupsWithDot(f.HomeLocale) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func groupsWithDot(tag language.Tag) bool {
	switch tag {
	case language.Indonesian, language.German:
		return true
	}
	return false
}

// FormatPercent "50%".
func FormatPercent(p int) string {
	return message.NewPrinter(language.English).Sprintf("%d%%", p)
}
