package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestNextNumber_SinHistorico(t *testing.T) {
	assert.Equal(t, "INV-2405-0001", invoice.NextNumber("", day(2024, time.May, 15), false))
}

func TestNextNumber_Incrementa(t *testing.T) {
	assert.Equal(t, "INV-2405-0008", invoice.NextNumber("INV-2405-0007", day(2024, time.May, 20), false))
	assert.Equal(t, "INV-2405-0100", invoice.NextNumber("INV-2405-0099", day(2024, time.May, 20), false))
}

func TestNextNumber_ContadorCruzaPeriodoConPrefijoDelMesActual(t *testing.T) {
	// El contador sigue desde la última factura aunque sea de otro mes, y el
	// prefijo es siempre el del mes actual: INV-2406-0008, no INV-2405-0008.
	assert.Equal(t, "INV-2406-0008", invoice.NextNumber("INV-2405-0007", day(2024, time.June, 1), false))
}

func TestNextNumber_ReinicioMensualOpcional(t *testing.T) {
	assert.Equal(t, "INV-2406-0001", invoice.NextNumber("INV-2405-0007", day(2024, time.June, 1), true))
	assert.Equal(t, "INV-2406-0004", invoice.NextNumber("INV-2406-0003", day(2024, time.June, 9), true))
}

func TestNextNumber_PatronInvalidoEmpiezaEnUno(t *testing.T) {
	for _, last := range []string{"INV-1717171717171", "FAC-2405-0007", "INV-2405-07", "xINV-2405-0007"} {
		assert.Equal(t, "INV-2405-0001", invoice.NextNumber(last, day(2024, time.May, 2), false), last)
	}
}

func TestNextNumber_DesbordeDeCuatroDigitos(t *testing.T) {
	// Sin desborde, 9999 volvería a 0001 y chocaría con números existentes.
	assert.Equal(t, "INV-2405-10000", invoice.NextNumber("INV-2405-9999", day(2024, time.May, 2), false))
	assert.Equal(t, "INV-2405-10001", invoice.NextNumber("INV-2405-10000", day(2024, time.May, 2), false))
}

func TestFallbackNumber(t *testing.T) {
	now := time.UnixMilli(1715760000123)
	assert.Equal(t, "INV-1715760000123", invoice.FallbackNumber(now))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "INV-0001", invoice.Prefix(day(2000, time.January, 1)))
	assert.Equal(t, "INV-2512", invoice.Prefix(day(2025, time.December, 31)))
}
