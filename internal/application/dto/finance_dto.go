package dto

import (
	"time"

	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	Type        string        `json:"type"` // income | expense
	Category    string        `json:"category"`
	Amount      money.Lenient `json:"amount"`
	Currency    string        `json:"currency,omitempty"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
}

// CreateBudgetRequest body para POST /api/budgets.
type CreateBudgetRequest struct {
	Category  string        `json:"category"`
	Limit     money.Lenient `json:"limit"`
	StartDate string        `json:"start_date"` // YYYY-MM-DD
	EndDate   string        `json:"end_date"`   // YYYY-MM-DD
}

// BudgetResponse presupuesto con su consumo.
type BudgetResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Limit           decimal.Decimal `json:"limit"`
	Spent           decimal.Decimal `json:"spent"`
	Remaining       decimal.Decimal `json:"remaining"`
	Progress        int             `json:"progress"`
	ProgressDisplay string          `json:"progress_display"`
	LimitDisplay    string          `json:"limit_display"`
	SpentDisplay    string          `json:"spent_display"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
}

// CreateGoalRequest body para POST /api/goals.
type CreateGoalRequest struct {
	Name     string        `json:"name"`
	Target   money.Lenient `json:"target"`
	Saved    money.Lenient `json:"saved"`
	Deadline string        `json:"deadline,omitempty"` // YYYY-MM-DD
}

// ContributeGoalRequest body para POST /api/goals/:id/contributions.
type ContributeGoalRequest struct {
	Amount money.Lenient `json:"amount"`
}

// GoalResponse meta con su avance.
type GoalResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Target          decimal.Decimal `json:"target"`
	Saved           decimal.Decimal `json:"saved"`
	Progress        int             `json:"progress"`
	ProgressDisplay string          `json:"progress_display"`
	TargetDisplay   string          `json:"target_display"`
	SavedDisplay    string          `json:"saved_display"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
}

// CategoryAmountResponse gasto por categoría.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Display  string          `json:"display"`
}

// ReportSummaryResponse respuesta de GET /api/reports/summary.
type ReportSummaryResponse struct {
	From           time.Time                `json:"from"`
	To             time.Time                `json:"to"`
	Currency       string                   `json:"currency"`
	Income         decimal.Decimal          `json:"income"`
	Expense        decimal.Decimal          `json:"expense"`
	Net            decimal.Decimal          `json:"net"`
	IncomeDisplay  string                   `json:"income_display"`
	ExpenseDisplay string                   `json:"expense_display"`
	NetDisplay     string                   `json:"net_display"`
	ByCategory     []CategoryAmountResponse `json:"by_category"`
	Budgets        []BudgetResponse         `json:"budgets"`
	Goals          []GoalResponse           `json:"goals"`
	InvoicedTotal  decimal.Decimal          `json:"invoiced_total"` // facturas no canceladas del rango
	DateLabel      string                   `json:"date_label"`
}
