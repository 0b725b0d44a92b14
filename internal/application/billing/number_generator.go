package billing

import (
	"context"
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// NumberGenerator asigna el consecutivo INV-YYMM-NNNN a partir de la última
// factura del usuario.
//
// Nunca falla: si el histórico no se puede leer devuelve INV-{epoch-ms}.
// Dos llamadas concurrentes pueden obtener el mismo número; la restricción
// única (user_id, invoice_number) del almacenamiento rechaza la segunda.
type NumberGenerator struct {
	repo         repository.InvoiceRepository
	resetMonthly bool
	now          func() time.Time
	log          *logger.Logger
}

// NewNumberGenerator construye el generador. now nil usa time.Now.
func NewNumberGenerator(repo repository.InvoiceRepository, resetMonthly bool, now func() time.Time, log *logger.Logger) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &NumberGenerator{repo: repo, resetMonthly: resetMonthly, now: now, log: log.Component("billing.number")}
}

// Next devuelve el siguiente número para ownerID.
func (g *NumberGenerator) Next(ctx context.Context, ownerID string) string {
	now := g.now()
	recent, err := g.repo.ListRecent(ctx, ownerID, 1)
	if err != nil {
		g.log.Warn().Err(err).Str("owner_id", ownerID).Msg("no se pudo leer la última factura; se usa número de respaldo")
		return invoice.FallbackNumber(now)
	}
	last := ""
	if len(recent) > 0 && recent[0] != nil {
		last = recent[0].InvoiceNumber
	}
	return invoice.NextNumber(last, now, g.resetMonthly)
}
