package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/finanzas-api/internal/domain/inventory"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// flakyProducts falla la lectura o la escritura de ids concretos.
type flakyProducts struct {
	*memory.ProductRepo
	failGet    map[string]bool
	failUpdate map[string]bool
}

func (f *flakyProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if f.failGet[id] {
		return nil, errors.New("conexión perdida")
	}
	return f.ProductRepo.GetByID(ctx, id)
}

func (f *flakyProducts) UpdateStock(ctx context.Context, id string, stock int64) error {
	if f.failUpdate[id] {
		return errors.New("timeout")
	}
	return f.ProductRepo.UpdateStock(ctx, id, stock)
}

func seedProducts(t *testing.T, repo *memory.ProductRepo, owner string, stocks map[string]int64) {
	t.Helper()
	for id, s := range stocks {
		require.NoError(t, repo.Create(context.Background(), &entity.Product{ID: id, UserID: owner, Name: id, Stock: s}))
	}
}

func stockOf(t *testing.T, repo *memory.ProductRepo, id string) int64 {
	t.Helper()
	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestReconcileStock_ReduceYRestore(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 5, "B": 10})
	uc := NewReconcileUseCase(repo, logger.NewNop())

	lines := []entity.OrderLine{{ProductID: "A", Quantity: 2}, {ID: "B", Quantity: 3}}
	rep := uc.ReconcileStock(context.Background(), "u1", lines, domaininv.DirectionReduce)

	require.Len(t, rep.Applied, 2)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, int64(3), stockOf(t, repo, "A"))
	assert.Equal(t, int64(7), stockOf(t, repo, "B"))
	assert.Equal(t, StockChange{ProductID: "A", Before: 5, After: 3}, rep.Applied[0])

	uc.ReconcileStock(context.Background(), "u1", lines, domaininv.DirectionRestore)
	assert.Equal(t, int64(5), stockOf(t, repo, "A"))
	assert.Equal(t, int64(10), stockOf(t, repo, "B"))
}

func TestReconcileStock_NuncaNegativo(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 1})
	uc := NewReconcileUseCase(repo, nil)

	rep := uc.ReconcileStock(context.Background(), "u1", []entity.OrderLine{{ProductID: "A", Quantity: 3}}, domaininv.DirectionReduce)

	assert.Equal(t, int64(0), stockOf(t, repo, "A"))
	assert.Equal(t, int64(0), rep.Applied[0].After)
}

func TestReconcileStock_CantidadPorDefecto(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 5, "B": 5})
	uc := NewReconcileUseCase(repo, nil)

	uc.ReconcileStock(context.Background(), "u1", []entity.OrderLine{{ProductID: "A"}, {ProductID: "B", Quantity: -4}}, domaininv.DirectionReduce)

	assert.Equal(t, int64(4), stockOf(t, repo, "A"))
	assert.Equal(t, int64(4), stockOf(t, repo, "B"))
}

func TestReconcileStock_LineasInvalidasNoDetienenElLote(t *testing.T) {
	mem := memory.NewProductRepository()
	seedProducts(t, mem, "u1", map[string]int64{"A": 5, "C": 5, "F": 5, "P": 5})
	seedProducts(t, mem, "u2", map[string]int64{"X": 5})
	repo := &flakyProducts{ProductRepo: mem, failGet: map[string]bool{"F": true}, failUpdate: map[string]bool{"P": true}}
	uc := NewReconcileUseCase(repo, nil)

	lines := []entity.OrderLine{
		{ProductID: "A", Quantity: 1},
		{Quantity: 1},
		{ProductID: "missing", Quantity: 1},
		{ProductID: "X", Quantity: 1},
		{ProductID: "F", Quantity: 1},
		{ProductID: "P", Quantity: 1},
		{ProductID: "C", Quantity: 2},
	}
	rep := uc.ReconcileStock(context.Background(), "u1", lines, domaininv.DirectionReduce)

	require.Len(t, rep.Applied, 2)
	assert.Equal(t, "A", rep.Applied[0].ProductID)
	assert.Equal(t, "C", rep.Applied[1].ProductID)

	reasons := map[int]string{}
	for _, s := range rep.Skipped {
		reasons[s.Index] = s.Reason
	}
	assert.Equal(t, map[int]string{
		1: ReasonMissingID,
		2: ReasonNotFound,
		3: ReasonForeignProduct,
		4: ReasonFetchFailed,
		5: ReasonPersistFailed,
	}, reasons)

	assert.Equal(t, int64(4), stockOf(t, mem, "A"))
	assert.Equal(t, int64(3), stockOf(t, mem, "C"))
	assert.Equal(t, int64(5), stockOf(t, mem, "X"), "producto ajeno intacto")
	assert.Equal(t, int64(5), stockOf(t, mem, "P"))
}

func TestReconcileStock_ColeccionMalFormada(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 5})
	uc := NewReconcileUseCase(repo, nil)

	rep := uc.ReconcileStock(context.Background(), "u1", nil, domaininv.DirectionReduce)

	assert.Equal(t, NoticeMalformedLines, rep.Notice)
	assert.Empty(t, rep.Applied)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, int64(5), stockOf(t, repo, "A"))
}

func TestReconcileStock_ListaVaciaSinAviso(t *testing.T) {
	uc := NewReconcileUseCase(memory.NewProductRepository(), nil)
	rep := uc.ReconcileStock(context.Background(), "u1", []entity.OrderLine{}, domaininv.DirectionReduce)
	assert.Empty(t, rep.Notice)
	assert.Empty(t, rep.Applied)
}

func TestReconcileStock_MismoProductoDosLineas(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 10})
	uc := NewReconcileUseCase(repo, nil)

	uc.ReconcileStock(context.Background(), "u1", []entity.OrderLine{{ProductID: "A", Quantity: 2}, {ProductID: "A", Quantity: 3}}, domaininv.DirectionReduce)

	assert.Equal(t, int64(5), stockOf(t, repo, "A"))
}

func TestReconcileStock_ContextoCancelado(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProducts(t, repo, "u1", map[string]int64{"A": 5})
	uc := NewReconcileUseCase(repo, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := uc.ReconcileStock(ctx, "u1", []entity.OrderLine{{ProductID: "A", Quantity: 1}}, domaininv.DirectionReduce)

	require.Len(t, rep.Skipped, 1)
	assert.Equal(t, ReasonCancelled, rep.Skipped[0].Reason)
	assert.Equal(t, int64(5), stockOf(t, repo, "A"))
}
