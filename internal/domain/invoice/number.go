package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// numberPattern INV-YYMM-NNNN; el grupo 1 es el periodo y el 2 el contador.
// El contador acepta más de cuatro dígitos: después de 9999 sigue 10000.
var numberPattern = regexp.MustCompile(`^INV-(\d{4})-(\d{4,})$`)

// Prefix devuelve "INV-YYMM" para el periodo de now.
func Prefix(now time.Time) string {
	return fmt.Sprintf("INV-%02d%02d", now.Year()%100, int(now.Month()))
}

// NextNumber deriva el siguiente número a partir del último emitido.
//
// Sin número previo, o si no cumple el patrón, empieza en 0001 para el periodo
// actual. Si cumple, incrementa su contador aunque pertenezca a otro periodo;
// con resetMonthly el contador vuelve a 0001 cuando el periodo cambia.
func NextNumber(last string, now time.Time, resetMonthly bool) string {
	prefix := Prefix(now)
	next := 1
	if m := numberPattern.FindStringSubmatch(last); m != nil {
		samePeriod := "INV-"+m[1] == prefix
		if n, err := strconv.Atoi(m[2]); err == nil && (samePeriod || !resetMonthly) {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, next)
}

// FallbackNumber número siempre único cuando no se puede leer el histórico.
func FallbackNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
