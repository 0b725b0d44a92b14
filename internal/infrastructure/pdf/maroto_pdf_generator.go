// Package pdf genera la representación imprimible de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + email      │  N° Factura + Fechas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Descuento / TOTAL            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Notas + QR de verificación                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/finanzas-api/internal/application/billing"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc appbilling.InvoiceDocument) ([]byte, error) {
	if doc.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura requerida")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	issuerName := "—"
	if doc.Issuer != nil {
		issuerName = nonEmpty(doc.Issuer.Name, doc.Issuer.Email)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+doc.Invoice.InvoiceNumber, true).
		WithAuthor(issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Invoice, doc.Issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y N° Factura + fechas (der).
func headerRow(invoice *entity.Invoice, issuer *entity.User) core.Row {
	name, email := "—", ""
	if issuer != nil {
		name = nonEmpty(issuer.Name, issuer.Email)
		email = issuer.Email
	}
	due := "—"
	if invoice.DueDate != nil {
		due = invoice.DueDate.Format(dateLayout)
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+invoice.IssueDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Vence: "+due, props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente; facturas sin cliente muestran "Consumidor final".
func customerRow(customer *entity.Customer) core.Row {
	name, contact := "Consumidor final", ""
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
			nonEmpty(customer.Email, "—"),
			nonEmpty(customer.Phone, "—"),
			nonEmpty(customer.Address, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableLineRows: una fila por línea de factura.
func tableLineRows(lines []appbilling.InvoiceLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(l.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nonEmpty(l.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.UnitPrice,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				l.Total,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc appbilling.InvoiceDocument) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: 19,
		})
	}

	return row.New(28).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Impuesto ("+doc.TaxRate+"):", 7),
			label("Descuento:", 13),
			grand("TOTAL:", 2),
		),
		col.New(4).Add(
			value(doc.Subtotal, 1),
			value(doc.Tax, 7),
			value("-"+doc.Discount, 13),
			grand(doc.Total, 1),
		),
	)
}

// footerRows: notas y QR con los datos mínimos para verificar la factura.
func footerRows(doc appbilling.InvoiceDocument) []core.Row {
	inv := doc.Invoice
	rows := make([]core.Row, 0, 2)
	if inv.Notes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("NOTAS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(inv.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(40).Add(
		col.New(3).Add(code.NewQr(verificationPayload(doc), props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Estado: "+inv.Status, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Conserve este documento como soporte de pago.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 12, Left: 3, Color: colorPrimary,
			}),
		),
	))
	return rows
}

// verificationPayload contenido del QR: número, fecha de emisión y total.
func verificationPayload(doc appbilling.InvoiceDocument) string {
	inv := doc.Invoice
	return fmt.Sprintf("%s|%s|%s %s", inv.InvoiceNumber, inv.IssueDate.Format("2006-01-02"), inv.Currency, inv.Total.StringFixed(2))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
