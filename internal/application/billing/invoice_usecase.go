package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase casos de uso de facturas: vista previa, creación, consulta y estado.
type InvoiceUseCase struct {
	invoiceRepo    repository.InvoiceRepository
	customerRepo   repository.CustomerRepository
	numbers        *NumberGenerator
	formatter      *money.Formatter
	defaultTaxRate decimal.Decimal
	now            func() time.Time
	log            *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso. defaultTaxRate es un porcentaje (ej. 11).
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	numbers *NumberGenerator,
	formatter *money.Formatter,
	defaultTaxRate decimal.Decimal,
	log *logger.Logger,
) *InvoiceUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &InvoiceUseCase{
		invoiceRepo:    invoiceRepo,
		customerRepo:   customerRepo,
		numbers:        numbers,
		formatter:      formatter,
		defaultTaxRate: defaultTaxRate,
		now:            time.Now,
		log:            log.Component("billing.invoice"),
	}
}

// Preview recalcula líneas y totales sin persistir nada. Acepta datos a medio
// editar: valores vacíos o inválidos cuentan como 0.
func (uc *InvoiceUseCase) Preview(in dto.InvoicePreviewRequest) dto.InvoiceTotalsResponse {
	draft, currency := uc.draft(in)
	totals := draft.Recalculate()
	return uc.totalsResponse(draft, totals, currency)
}

// NextNumber número que recibiría la próxima factura del usuario.
func (uc *InvoiceUseCase) NextNumber(ctx context.Context, userID string) dto.NextNumberResponse {
	return dto.NextNumberResponse{InvoiceNumber: uc.numbers.Next(ctx, userID)}
}

// Create guarda una factura en estado draft. Los totales siempre se recalculan
// en el servidor; si no llega número se genera el consecutivo. Si el
// consecutivo generado ya existe (p. ej. la última factura tenía un número
// libre) se reintenta una vez con INV-{epoch-ms}.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var customer *entity.Customer
	if in.CustomerID != "" {
		c, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invoice: obtener cliente: %w", err)
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		if c.UserID != userID {
			return nil, domain.ErrForbidden
		}
		customer = c
	}

	now := uc.now()
	issue, err := parseOptionalDate(in.IssueDate)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		issue = &today
	}
	due, err := parseOptionalDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	if due != nil && due.Before(*issue) {
		return nil, fmt.Errorf("%w: due_date anterior a issue_date", domain.ErrInvalidInput)
	}

	draft, currency := uc.draft(in.InvoicePreviewRequest)
	totals := draft.Recalculate()

	number := strings.TrimSpace(in.InvoiceNumber)
	generated := number == ""
	if generated {
		number = uc.numbers.Next(ctx, userID)
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    in.CustomerID,
		InvoiceNumber: number,
		Items:         draft.Lines,
		Currency:      currency,
		Subtotal:      totals.Subtotal,
		TaxRate:       draft.TaxRate,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		Status:        entity.InvoiceStatusDraft,
		Notes:         in.Notes,
		IssueDate:     *issue,
		DueDate:       due,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.invoiceRepo.Create(ctx, inv)
	if generated && errors.Is(err, domain.ErrDuplicate) {
		fallback := invoice.FallbackNumber(now)
		uc.log.Warn().Str("user_id", userID).Str("invoice_number", number).Str("fallback", fallback).
			Msg("consecutivo generado ya existe; se usa número de respaldo")
		number = fallback
		inv.InvoiceNumber = fallback
		err = uc.invoiceRepo.Create(ctx, inv)
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: el número %s ya existe", domain.ErrDuplicate, number)
		}
		return nil, err
	}
	res := uc.toResponse(inv, customer)
	return &res, nil
}

// Get devuelve una factura del usuario con el nombre del cliente.
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	var customer *entity.Customer
	if inv.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(ctx, inv.CustomerID)
		if err != nil {
			uc.log.Warn().Err(err).Str("invoice_id", inv.ID).Str("customer_id", inv.CustomerID).
				Msg("no se pudo leer el cliente; la factura se devuelve sin nombre")
		}
	}
	res := uc.toResponse(inv, customer)
	return &res, nil
}

// List lista facturas del usuario, más recientes primero.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.invoiceRepo.ListByOwner(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Items: make([]dto.InvoiceResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range list {
		out.Items = append(out.Items, uc.toResponse(inv, nil))
	}
	return out, nil
}

// UpdateStatus cambia el estado. Una factura cancelada no vuelve a abrirse.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, userID, invoiceID, status string) (*dto.InvoiceResponse, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !entity.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	inv, err := uc.load(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == entity.InvoiceStatusCancelled && status != entity.InvoiceStatusCancelled {
		return nil, fmt.Errorf("%w: la factura está cancelada", domain.ErrConflict)
	}
	now := uc.now()
	if err := uc.invoiceRepo.UpdateStatus(ctx, inv.ID, status, now); err != nil {
		return nil, fmt.Errorf("invoice: actualizar estado: %w", err)
	}
	inv.Status = status
	inv.UpdatedAt = now
	res := uc.toResponse(inv, nil)
	return &res, nil
}

func (uc *InvoiceUseCase) load(ctx context.Context, userID, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

// draft arma el borrador desde la entrada del formulario.
func (uc *InvoiceUseCase) draft(in dto.InvoicePreviewRequest) (*invoice.Draft, string) {
	lines := make([]entity.InvoiceLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, entity.InvoiceLineItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    invoice.CoerceQuantity(it.Quantity.Decimal),
			UnitPrice:   it.UnitPrice.Decimal,
		})
	}
	rate := uc.defaultTaxRate
	if in.TaxRate != nil {
		rate = in.TaxRate.Decimal
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = uc.formatter.Home
	}
	return &invoice.Draft{Lines: lines, TaxRate: rate, Discount: in.Discount.Decimal}, currency
}

func (uc *InvoiceUseCase) totalsResponse(d *invoice.Draft, t invoice.Totals, currency string) dto.InvoiceTotalsResponse {
	f := uc.formatter
	return dto.InvoiceTotalsResponse{
		Items:           d.Lines,
		Subtotal:        t.Subtotal,
		TaxRate:         d.TaxRate,
		Tax:             t.Tax,
		Discount:        t.Discount,
		Total:           t.Total,
		Currency:        currency,
		SubtotalDisplay: f.FormatCurrency(t.Subtotal, currency),
		TaxDisplay:      f.FormatCurrency(t.Tax, currency),
		DiscountDisplay: f.FormatCurrency(t.Discount, currency),
		TotalDisplay:    f.FormatCurrency(t.Total, currency),
	}
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, customer *entity.Customer) dto.InvoiceResponse {
	d := &invoice.Draft{Lines: inv.Items, TaxRate: inv.TaxRate, Discount: inv.Discount}
	t := invoice.Totals{Subtotal: inv.Subtotal, Tax: inv.Tax, Discount: inv.Discount, Total: inv.Total}
	res := dto.InvoiceResponse{
		InvoiceTotalsResponse: uc.totalsResponse(d, t, inv.Currency),
		ID:                    inv.ID,
		CustomerID:            inv.CustomerID,
		InvoiceNumber:         inv.InvoiceNumber,
		Status:                inv.Status,
		Notes:                 inv.Notes,
		IssueDate:             inv.IssueDate,
		DueDate:               inv.DueDate,
		CreatedAt:             inv.CreatedAt,
	}
	if customer != nil {
		res.CustomerName = customer.Name
	}
	return res
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q (use YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return &t, nil
}
