package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/logger"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

var may2024 = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

// tickingClock avanza un segundo por llamada para que created_at ordene las facturas.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newInvoiceUseCase(repos *memory.Repositories) *InvoiceUseCase {
	numbers := NewNumberGenerator(repos.Invoices, false, fixedClock(may2024), nil)
	uc := NewInvoiceUseCase(repos.Invoices, repos.Customers, numbers, money.NewFormatter("IDR"), decimal.NewFromInt(11), nil)
	uc.now = tickingClock(may2024)
	return uc
}

func decodeCreate(t *testing.T, body string) dto.CreateInvoiceRequest {
	t.Helper()
	var in dto.CreateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

const twoLines = `{"items":[
	{"description":"Consultoría","quantity":2,"unit_price":10000},
	{"description":"Soporte","quantity":"1","unit_price":"5000"}
],"discount":1000}`

func TestPreview_TotalesConTasaPorDefecto(t *testing.T) {
	uc := newInvoiceUseCase(memory.New())
	in := decodeCreate(t, twoLines)

	res := uc.Preview(in.InvoicePreviewRequest)

	assert.Equal(t, "20000", res.Items[0].Total.String())
	assert.Equal(t, "25000", res.Subtotal.String())
	assert.Equal(t, "2750", res.Tax.String())
	assert.Equal(t, "26750", res.Total.String())
	assert.Equal(t, "Rp 26.750", res.TotalDisplay)
	assert.Equal(t, "IDR", res.Currency)
}

func TestPreview_FormularioIncompleto(t *testing.T) {
	uc := newInvoiceUseCase(memory.New())
	in := decodeCreate(t, `{"items":[{"quantity":"","unit_price":"10000"},{"quantity":"abc","unit_price":null}],"tax_rate":"","discount":"x"}`)

	res := uc.Preview(in.InvoicePreviewRequest)

	assert.True(t, res.Items[0].Total.IsZero())
	assert.True(t, res.Total.IsZero())
	assert.True(t, res.TaxRate.IsZero(), "tax_rate vacío explícito vale 0")
}

func TestPreview_DescuentoMayorAlTotal(t *testing.T) {
	uc := newInvoiceUseCase(memory.New())
	in := decodeCreate(t, `{"items":[{"quantity":1,"unit_price":1000}],"tax_rate":0,"discount":5000}`)
	assert.True(t, uc.Preview(in.InvoicePreviewRequest).Total.IsZero())
}

func TestCreate_GeneraNumeroConsecutivo(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())

	first, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)
	assert.Equal(t, "INV-2405-0001", first.InvoiceNumber)
	assert.Equal(t, entity.InvoiceStatusDraft, first.Status)
	assert.Equal(t, "26750", first.Total.String())
	assert.Equal(t, "2024-05-15", first.IssueDate.Format("2006-01-02"))

	second, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)
	assert.Equal(t, "INV-2405-0002", second.InvoiceNumber)

	assert.Equal(t, "INV-2405-0003", uc.NextNumber(ctx, "u1").InvoiceNumber)
	assert.Equal(t, "INV-2405-0001", uc.NextNumber(ctx, "u2").InvoiceNumber)
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())
	in := decodeCreate(t, twoLines)
	in.InvoiceNumber = "INV-2405-0100"

	_, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_ConsecutivoOcupadoUsaNumeroDeRespaldo(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())

	first, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)
	assert.Equal(t, "INV-2405-0001", first.InvoiceNumber)

	custom := decodeCreate(t, twoLines)
	custom.InvoiceNumber = "CUSTOM-1"
	_, err = uc.Create(ctx, "u1", custom)
	require.NoError(t, err)

	// La última factura tiene un número libre: el consecutivo vuelve a 0001, que ya existe.
	seen := map[string]bool{first.InvoiceNumber: true, "CUSTOM-1": true}
	for i := 0; i < 3; i++ {
		got, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
		require.NoError(t, err, "intento %d", i)
		assert.Regexp(t, regexp.MustCompile(`^INV-\d{13}$`), got.InvoiceNumber)
		assert.False(t, seen[got.InvoiceNumber], "número repetido %s", got.InvoiceNumber)
		seen[got.InvoiceNumber] = true
	}
}

func TestCreate_NumeroDelClienteDuplicadoNoUsaRespaldo(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())
	_, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)

	in := decodeCreate(t, twoLines)
	in.InvoiceNumber = "INV-2405-0001"
	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c2", UserID: "u2", Name: "Ajeno"}))
	uc := newInvoiceUseCase(repos)

	_, err := uc.Create(ctx, "u1", dto.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := decodeCreate(t, twoLines)
	in.CustomerID = "c2"
	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in = decodeCreate(t, twoLines)
	in.IssueDate, in.DueDate = "2024-05-10", "2024-05-01"
	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.DueDate = "31/05/2024"
	_, err = uc.Create(ctx, "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_ConNombreDeCliente(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c1", UserID: "u1", Name: "Toko Maju"}))
	uc := newInvoiceUseCase(repos)
	in := decodeCreate(t, twoLines)
	in.CustomerID = "c1"
	created, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)

	got, err := uc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toko Maju", got.CustomerName)

	_, err = uc.Get(ctx, "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Get(ctx, "u1", "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type failingCustomers struct {
	repository.CustomerRepository
}

func (failingCustomers) GetByID(context.Context, string) (*entity.Customer, error) {
	return nil, errors.New("conexión cerrada")
}

func TestGet_ErrorDeClienteSeRegistra(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c1", UserID: "u1", Name: "Toko Maju"}))
	uc := newInvoiceUseCase(repos)
	in := decodeCreate(t, twoLines)
	in.CustomerID = "c1"
	created, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)

	var buf bytes.Buffer
	uc.log = logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	uc.customerRepo = failingCustomers{repos.Customers}

	got, err := uc.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CustomerName)
	assert.Contains(t, buf.String(), "conexión cerrada")
	assert.Contains(t, buf.String(), `"customer_id":"c1"`)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())
	created, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)

	res, err := uc.UpdateStatus(ctx, "u1", created.ID, "PAID")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, res.Status)

	_, err = uc.UpdateStatus(ctx, "u1", created.ID, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus(ctx, "u1", created.ID, "cancelled")
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, "u1", created.ID, "sent")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newInvoiceUseCase(memory.New())
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
		require.NoError(t, err)
	}
	res, err := uc.List(ctx, "u1", 2, 0)
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.Page.Limit)
}
