package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/finanzas-api/internal/application/billing"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Preview godoc
// @Summary      Recalcular líneas y totales sin guardar
// @Description  Acepta formularios a medio llenar: valores vacíos o no numéricos cuentan como 0.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoicePreviewRequest  true  "Líneas, tax_rate y discount"
// @Success      200   {object}  dto.InvoiceTotalsResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoicePreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Preview(in))
}

// NextNumber godoc
// @Summary      Siguiente número de factura (INV-YYMM-NNNN)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NextNumberResponse
// @Router       /api/invoices/next-number [get]
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	return c.JSON(h.uc.NextNumber(c.Context(), userID))
}

// Create godoc
// @Summary      Crear factura
// @Description  Si invoice_number viene vacío se genera el siguiente consecutivo.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err, "cliente no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas (más recientes primero)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), userID, limit, offset)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceStatusRequest    true  "draft|sent|paid|overdue|cancelled"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), userID, c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
