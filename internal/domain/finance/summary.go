// Package finance agrega transacciones ya obtenidas: totales por tipo, gasto por
// categoría y consumo de presupuestos.
package finance

import (
	"sort"
	"strings"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategoryTotal gasto acumulado de una categoría.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Summary totales de un conjunto de transacciones.
type Summary struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	ByCategory []CategoryTotal // solo gastos, mayor primero
}

// Summarize suma ingresos y gastos. Montos no positivos se ignoran.
func Summarize(txs []*entity.Transaction) Summary {
	var s Summary
	byCat := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx == nil || !tx.Amount.IsPositive() {
			continue
		}
		switch tx.Type {
		case entity.TransactionIncome:
			s.Income = s.Income.Add(tx.Amount)
		case entity.TransactionExpense:
			s.Expense = s.Expense.Add(tx.Amount)
			cat := normalizeCategory(tx.Category)
			byCat[cat] = byCat[cat].Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expense)
	for cat, amt := range byCat {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if c := s.ByCategory[i].Amount.Cmp(s.ByCategory[j].Amount); c != 0 {
			return c > 0
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})
	return s
}

// BudgetSpent gasto de la categoría del presupuesto dentro de su rango (inclusive).
func BudgetSpent(b *entity.Budget, txs []*entity.Transaction) decimal.Decimal {
	spent := decimal.Zero
	cat := normalizeCategory(b.Category)
	for _, tx := range txs {
		if tx == nil || tx.Type != entity.TransactionExpense || !tx.Amount.IsPositive() {
			continue
		}
		if normalizeCategory(tx.Category) != cat {
			continue
		}
		if tx.Date.Before(b.StartDate) || tx.Date.After(b.EndDate) {
			continue
		}
		spent = spent.Add(tx.Amount)
	}
	return spent
}

func normalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return "otros"
	}
	return c
}
