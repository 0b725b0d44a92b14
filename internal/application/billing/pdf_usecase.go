package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	formatter    *money.Formatter
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	formatter *money.Formatter,
) *PDFUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		generator:    generator,
		formatter:    formatter,
	}
}

// DownloadInvoicePDF recupera la factura con su emisor y cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece al usuario del token.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.UserID != userID {
		return nil, "", domain.ErrForbidden
	}

	issuer, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}
	if issuer == nil {
		return nil, "", domain.ErrUserNotFound
	}

	doc := InvoiceDocument{Invoice: inv, Issuer: issuer}
	if inv.CustomerID != "" {
		// cliente borrado: el PDF sale sin bloque de receptor
		if c, cErr := uc.customerRepo.GetByID(ctx, inv.CustomerID); cErr == nil {
			doc.Customer = c
		}
	}

	f, cur := uc.formatter, inv.Currency
	for _, l := range inv.Items {
		doc.Lines = append(doc.Lines, InvoiceLineForPDF{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   f.FormatCurrency(l.UnitPrice, cur),
			Total:       f.FormatCurrency(l.Total, cur),
		})
	}
	doc.Subtotal = f.FormatCurrency(inv.Subtotal, cur)
	doc.TaxRate = money.FormatPercent(int(inv.TaxRate.Round(0).IntPart()))
	doc.Tax = f.FormatCurrency(inv.Tax, cur)
	doc.Discount = f.FormatCurrency(inv.Discount, cur)
	doc.Total = f.FormatCurrency(inv.Total, cur)

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber), nil
}
