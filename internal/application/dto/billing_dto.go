package dto

import (
	"time"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// InvoiceLineRequest línea tal como llega del formulario. Cantidad y precio
// vacíos o no numéricos valen 0; el total de línea no se recibe.
type InvoiceLineRequest struct {
	Description string        `json:"description"`
	Quantity    money.Lenient `json:"quantity"`
	UnitPrice   money.Lenient `json:"unit_price"`
}

// InvoicePreviewRequest body para POST /api/invoices/preview.
// TaxRate nil usa la tasa por defecto configurada.
type InvoicePreviewRequest struct {
	Items    []InvoiceLineRequest `json:"items"`
	TaxRate  *money.Lenient       `json:"tax_rate"`
	Discount money.Lenient        `json:"discount"`
	Currency string               `json:"currency,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// InvoiceNumber vacío: se genera el siguiente consecutivo.
type CreateInvoiceRequest struct {
	InvoicePreviewRequest
	CustomerID    string `json:"customer_id"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	Notes         string `json:"notes,omitempty"`
	IssueDate     string `json:"issue_date,omitempty"` // YYYY-MM-DD; vacío = hoy
	DueDate       string `json:"due_date,omitempty"`   // YYYY-MM-DD
}

// InvoiceTotalsResponse totales calculados con su representación para mostrar.
type InvoiceTotalsResponse struct {
	Items           []entity.InvoiceLineItem `json:"items"`
	Subtotal        decimal.Decimal          `json:"subtotal"`
	TaxRate         decimal.Decimal          `json:"tax_rate"`
	Tax             decimal.Decimal          `json:"tax"`
	Discount        decimal.Decimal          `json:"discount"`
	Total           decimal.Decimal          `json:"total"`
	Currency        string                   `json:"currency"`
	SubtotalDisplay string                   `json:"subtotal_display"`
	TaxDisplay      string                   `json:"tax_display"`
	DiscountDisplay string                   `json:"discount_display"`
	TotalDisplay    string                   `json:"total_display"`
}

// InvoiceResponse factura completa para GET /api/invoices/:id.
type InvoiceResponse struct {
	InvoiceTotalsResponse
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name,omitempty"`
	InvoiceNumber string     `json:"invoice_number"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// NextNumberResponse respuesta de GET /api/invoices/next-number.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}
