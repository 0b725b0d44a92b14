package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// ReportHandler resumen financiero por rango de fechas (protegido).
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	now func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, now: time.Now}
}

// Summary godoc
// @Summary      Resumen de ingresos, gastos, presupuestos y metas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD. Default: primer día del mes."
// @Param        to    query  string  false  "YYYY-MM-DD. Default: fin de mes."
// @Success      200   {object}  dto.ReportSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	from, to, err := usecase.ParseRange(c.Query("from"), c.Query("to"), h.now())
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.GetSummary(c.Context(), userID, from, to)
	if err != nil {
		return respondError(c, err, "sin datos")
	}
	return c.JSON(out)
}
