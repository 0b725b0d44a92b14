package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

type failingGoals struct{ *memory.GoalRepo }

func (failingGoals) ListByOwner(context.Context, string) ([]*entity.Goal, error) {
	return nil, errors.New("timeout")
}

func seed(t *testing.T, repos *memory.Repositories) {
	t.Helper()
	ctx := context.Background()
	d := func(day int) time.Time { return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC) }
	txs := []entity.Transaction{
		{ID: "t1", UserID: "u1", Type: entity.TransactionIncome, Category: "salario", Amount: decimal.NewFromInt(5000000), Date: d(1)},
		{ID: "t2", UserID: "u1", Type: entity.TransactionExpense, Category: "comida", Amount: decimal.NewFromInt(750000), Date: d(5)},
		{ID: "t3", UserID: "u1", Type: entity.TransactionExpense, Category: "transporte", Amount: decimal.NewFromInt(250000), Date: d(6)},
		{ID: "t4", UserID: "u2", Type: entity.TransactionExpense, Category: "comida", Amount: decimal.NewFromInt(1), Date: d(6)},
	}
	for i := range txs {
		require.NoError(t, repos.Transactions.Create(ctx, &txs[i]))
	}
	require.NoError(t, repos.Budgets.Create(ctx, &entity.Budget{
		ID: "b1", UserID: "u1", Category: "comida", Limit: decimal.NewFromInt(1000000),
		StartDate: d(1), EndDate: time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC),
	}))
	require.NoError(t, repos.Goals.Create(ctx, &entity.Goal{ID: "g1", UserID: "u1", Name: "Viaje", Target: decimal.NewFromInt(200), Saved: decimal.NewFromInt(50)}))
	require.NoError(t, repos.Invoices.Create(ctx, &entity.Invoice{ID: "i1", UserID: "u1", InvoiceNumber: "INV-2405-0001", Total: decimal.NewFromInt(26750), Status: entity.InvoiceStatusPaid, IssueDate: d(10), CreatedAt: d(10)}))
	require.NoError(t, repos.Invoices.Create(ctx, &entity.Invoice{ID: "i2", UserID: "u1", InvoiceNumber: "INV-2405-0002", Total: decimal.NewFromInt(999), Status: entity.InvoiceStatusCancelled, IssueDate: d(11), CreatedAt: d(11)}))
}

func TestGetSummary(t *testing.T) {
	repos := memory.New()
	seed(t, repos)
	uc := NewReportUseCase(repos.Transactions, repos.Budgets, repos.Goals, repos.Invoices, money.NewFormatter("IDR"))

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	res, err := uc.GetSummary(context.Background(), "u1", from, to)
	require.NoError(t, err)

	assert.Equal(t, "5000000", res.Income.String())
	assert.Equal(t, "1000000", res.Expense.String())
	assert.Equal(t, "4000000", res.Net.String())
	assert.Equal(t, "Rp 4.000.000", res.NetDisplay)
	require.Len(t, res.ByCategory, 2)
	assert.Equal(t, "comida", res.ByCategory[0].Category)
	require.Len(t, res.Budgets, 1)
	assert.Equal(t, 75, res.Budgets[0].Progress)
	require.Len(t, res.Goals, 1)
	assert.Equal(t, 25, res.Goals[0].Progress)
	assert.Equal(t, "26750", res.InvoicedTotal.String())
	assert.Equal(t, "Mayo 2024", res.DateLabel)
}

func TestGetSummary_ErrorDeUnaFuente(t *testing.T) {
	repos := memory.New()
	uc := NewReportUseCase(repos.Transactions, repos.Budgets, failingGoals{repos.Goals}, repos.Invoices, nil)

	_, err := uc.GetSummary(context.Background(), "u1", time.Now().AddDate(0, -1, 0), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metas")
}

func TestRangeLabel(t *testing.T) {
	from := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/05/2024 - 20/05/2024", rangeLabel(from, from.AddDate(0, 0, 17)))
}
