package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FormatProgress devuelve round(saved/target*100) acotado a [0,100].
// Con target <= 0 el progreso es 0.
func FormatProgress(saved, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}
	pct := saved.Div(target).Mul(hundred).Round(0).IntPart()
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}
