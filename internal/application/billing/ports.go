package billing

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida: representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// InvoiceDocument factura lista para imprimir: montos ya formateados en la moneda de la factura.
type InvoiceDocument struct {
	Invoice  *entity.Invoice
	Issuer   *entity.User
	Customer *entity.Customer // nil si la factura no tiene cliente
	Lines    []InvoiceLineForPDF
	Subtotal string
	TaxRate  string
	Tax      string
	Discount string
	Total    string
}

// InvoiceLineForPDF línea de factura formateada.
type InvoiceLineForPDF struct {
	Description string
	Quantity    int64
	UnitPrice   string
	Total       string
}
