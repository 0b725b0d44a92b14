package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus indica si s es un estado de factura conocido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// InvoiceLineItem línea de factura. Total = Quantity * UnitPrice y siempre se recalcula.
type InvoiceLineItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice cabecera de factura con sus líneas embebidas (columna items).
type Invoice struct {
	ID            string
	UserID        string
	CustomerID    string
	InvoiceNumber string // INV-YYMM-NNNN o INV-{epoch-ms} como respaldo
	Items         []InvoiceLineItem
	Currency      string
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // porcentaje, ej. 11
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Notes         string
	IssueDate     time.Time
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
