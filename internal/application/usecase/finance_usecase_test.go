package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewTransactionUseCase(memory.NewTransactionRepository(), money.NewFormatter("IDR"))

	tx, err := uc.Create(ctx, "u1", decode[dto.CreateTransactionRequest](t, `{"type":"Expense","category":"comida","amount":"25000","date":"2024-05-03"}`))
	require.NoError(t, err)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, "IDR", tx.Currency)
	assert.Equal(t, "Rp 25.000", tx.AmountDisplay)

	_, err = uc.Create(ctx, "u1", decode[dto.CreateTransactionRequest](t, `{"type":"gift","amount":1}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, "u1", decode[dto.CreateTransactionRequest](t, `{"type":"income","amount":""}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, "u1", decode[dto.CreateTransactionRequest](t, `{"type":"income","amount":5,"date":"ayer"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	from, to, err := ParseRange("2024-05-01", "2024-05-31", time.Now())
	require.NoError(t, err)
	list, err := uc.List(ctx, "u1", from, to)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBudgetUseCase_Consumo(t *testing.T) {
	ctx := context.Background()
	txRepo := memory.NewTransactionRepository()
	txUC := NewTransactionUseCase(txRepo, nil)
	uc := NewBudgetUseCase(memory.NewBudgetRepository(), txRepo, money.NewFormatter("IDR"))

	b, err := uc.Create(ctx, "u1", decode[dto.CreateBudgetRequest](t, `{"category":"comida","limit":200000,"start_date":"2024-05-01","end_date":"2024-05-31"}`))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Progress)

	for _, body := range []string{
		`{"type":"expense","category":"comida","amount":50000,"date":"2024-05-31"}`,
		`{"type":"expense","category":"comida","amount":50000,"date":"2024-06-01"}`,
		`{"type":"expense","category":"ocio","amount":50000,"date":"2024-05-10"}`,
	} {
		_, err := txUC.Create(ctx, "u1", decode[dto.CreateTransactionRequest](t, body))
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "50000", list[0].Spent.String())
	assert.Equal(t, "150000", list[0].Remaining.String())
	assert.Equal(t, 25, list[0].Progress)
	assert.Equal(t, "25%", list[0].ProgressDisplay)

	_, err = uc.Create(ctx, "u1", decode[dto.CreateBudgetRequest](t, `{"category":"x","limit":1,"start_date":"2024-05-31","end_date":"2024-05-01"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGoalUseCase_Aportes(t *testing.T) {
	ctx := context.Background()
	uc := NewGoalUseCase(memory.NewGoalRepository(), money.NewFormatter("IDR"))

	g, err := uc.Create(ctx, "u1", decode[dto.CreateGoalRequest](t, `{"name":"Laptop","target":1000000,"saved":250000,"deadline":"2024-12-31"}`))
	require.NoError(t, err)
	assert.Equal(t, 25, g.Progress)

	g, err = uc.Contribute(ctx, "u1", g.ID, decode[dto.ContributeGoalRequest](t, `{"amount":"250000"}`))
	require.NoError(t, err)
	assert.Equal(t, 50, g.Progress)
	assert.Equal(t, "Rp 500.000", g.SavedDisplay)

	g, err = uc.Contribute(ctx, "u1", g.ID, decode[dto.ContributeGoalRequest](t, `{"amount":900000}`))
	require.NoError(t, err)
	assert.Equal(t, 100, g.Progress, "se recorta en 100")

	_, err = uc.Contribute(ctx, "u1", g.ID, decode[dto.ContributeGoalRequest](t, `{"amount":0}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Contribute(ctx, "u2", g.ID, decode[dto.ContributeGoalRequest](t, `{"amount":1}`))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestParseRange(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	from, to, err := ParseRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 29, to.Day())

	_, to, err = ParseRange("2024-01-01", "2024-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, 23, to.Hour())

	_, _, err = ParseRange("2024-02-01", "2024-01-01", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
