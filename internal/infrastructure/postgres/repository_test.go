package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// fakeQuerier registra la última sentencia y devuelve respuestas fijas.
type fakeQuerier struct {
	execTag pgconn.CommandTag
	execErr error
	rowErr  error
	lastSQL string
	args    []any
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.args = sql, args
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.args = sql, args
	return nil, errors.New("no implementado")
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.args = sql, args
	return errRow{err: f.rowErr}
}

func TestGetByID_NoRowsDevuelveNil(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	ctx := context.Background()

	p, err := NewProductRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, p)

	inv, err := NewInvoiceRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, inv)

	u, err := NewUserRepository(q).GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Contains(t, q.lastSQL, "lower(email)")
}

func TestGetByID_ErrorSeEnvuelve(t *testing.T) {
	q := &fakeQuerier{rowErr: errors.New("conexión cerrada")}
	_, err := NewOrderRepository(q).GetByID(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get order")
}

func TestCreate_UniqueViolationEsDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	err := NewInvoiceRepository(q).Create(context.Background(), &entity.Invoice{ID: "1", InvoiceNumber: "INV-2406-0001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = NewProductRepository(q).Create(context.Background(), &entity.Product{ID: "1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateOrder_LineasNilSeGuardanComoArreglo(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	require.NoError(t, NewOrderRepository(q).Create(context.Background(), &entity.Order{ID: "1"}))
	require.Len(t, q.args, 9)
	assert.Equal(t, []entity.OrderLine{}, q.args[3])
	assert.Nil(t, q.args[2], "customer vacío se guarda como NULL")
}

func TestUpdateStock_SinFilasEsNotFound(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	err := NewProductRepository(q).UpdateStock(context.Background(), "p1", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = NewGoalRepository(q).UpdateSaved(context.Background(), "g1", entity.Goal{}.Saved, entity.Goal{}.CreatedAt)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdateStatus_SinFilasEsConflicto(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	err := NewOrderRepository(q).UpdateStatus(context.Background(), "o1", entity.OrderStatusPending, entity.OrderStatusCompleted, time.Now())
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, q.lastSQL, "AND status = $2")
	assert.Equal(t, []any{"o1", entity.OrderStatusPending, entity.OrderStatusCompleted}, q.args[:3])
}
