// Package analytics contiene los casos de uso de reportes financieros.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/finance"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportInvoiceWindow facturas recientes consideradas para el total facturado.
const reportInvoiceWindow = 500

// ReportUseCase genera el resumen financiero de un rango de fechas.
//
// Fuente de datos: repositorios de transacciones, presupuestos, metas y facturas
// (solo lectura). Las cuatro consultas corren en paralelo.
type ReportUseCase struct {
	txRepo      repository.TransactionRepository
	budgetRepo  repository.BudgetRepository
	goalRepo    repository.GoalRepository
	invoiceRepo repository.InvoiceRepository
	budgets     *usecase.BudgetUseCase
	goals       *usecase.GoalUseCase
	formatter   *money.Formatter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	txRepo repository.TransactionRepository,
	budgetRepo repository.BudgetRepository,
	goalRepo repository.GoalRepository,
	invoiceRepo repository.InvoiceRepository,
	formatter *money.Formatter,
) *ReportUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &ReportUseCase{
		txRepo:      txRepo,
		budgetRepo:  budgetRepo,
		goalRepo:    goalRepo,
		invoiceRepo: invoiceRepo,
		budgets:     usecase.NewBudgetUseCase(budgetRepo, txRepo, formatter),
		goals:       usecase.NewGoalUseCase(goalRepo, formatter),
		formatter:   formatter,
	}
}

// GetSummary construye el resumen para el usuario en [from, to].
//
// Cuatro llamadas en paralelo:
//  1. transacciones del rango  → ingresos, gastos, neto, gasto por categoría
//  2. presupuestos             → consumo (sobre las transacciones de su propio rango)
//  3. metas                    → avance
//  4. facturas recientes       → total facturado en el rango (sin canceladas)
func (uc *ReportUseCase) GetSummary(ctx context.Context, userID string, from, to time.Time) (*dto.ReportSummaryResponse, error) {
	var (
		txs      []*entity.Transaction
		budgets  []dto.BudgetResponse
		goals    []dto.GoalResponse
		invoiced decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.txRepo.ListByOwner(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("report: transacciones: %w", err)
		}
		txs = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.budgets.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("report: presupuestos: %w", err)
		}
		budgets = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.goals.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("report: metas: %w", err)
		}
		goals = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.invoiceRepo.ListRecent(gctx, userID, reportInvoiceWindow)
		if err != nil {
			return fmt.Errorf("report: facturas: %w", err)
		}
		invoiced = invoicedInRange(list, from, to)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := finance.Summarize(txs)
	f := uc.formatter
	out := &dto.ReportSummaryResponse{
		From:           from,
		To:             to,
		Currency:       f.Home,
		Income:         sum.Income,
		Expense:        sum.Expense,
		Net:            sum.Net,
		IncomeDisplay:  f.FormatCurrency(sum.Income, f.Home),
		ExpenseDisplay: f.FormatCurrency(sum.Expense, f.Home),
		NetDisplay:     f.FormatCurrency(sum.Net, f.Home),
		ByCategory:     make([]dto.CategoryAmountResponse, 0, len(sum.ByCategory)),
		Budgets:        budgets,
		Goals:          goals,
		InvoicedTotal:  invoiced,
		DateLabel:      rangeLabel(from, to),
	}
	for _, c := range sum.ByCategory {
		out.ByCategory = append(out.ByCategory, dto.CategoryAmountResponse{
			Category: c.Category,
			Amount:   c.Amount,
			Display:  f.FormatCurrency(c.Amount, f.Home),
		})
	}
	return out, nil
}

func invoicedInRange(list []*entity.Invoice, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range list {
		if inv.Status == entity.InvoiceStatusCancelled {
			continue
		}
		if inv.IssueDate.Before(from) || inv.IssueDate.After(to) {
			continue
		}
		total = total.Add(inv.Total)
	}
	return total
}

// rangeLabel etiqueta legible: "Mayo 2024" si el rango es un mes, si no "01/05/2024 - 15/06/2024".
func rangeLabel(from, to time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	start, end := usecase.MonthRange(from)
	if from.Equal(start) && to.Equal(end) {
		return fmt.Sprintf("%s %d", months[from.Month()-1], from.Year())
	}
	return from.Format("02/01/2006") + " - " + to.Format("02/01/2006")
}
