package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

type captureGenerator struct {
	doc InvoiceDocument
}

func (g *captureGenerator) GenerateInvoicePDF(_ context.Context, doc InvoiceDocument) ([]byte, error) {
	g.doc = doc
	return []byte("%PDF-1.3"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "a@b.co", Name: "Ana"}))
	uc := newInvoiceUseCase(repos)
	created, err := uc.Create(ctx, "u1", decodeCreate(t, twoLines))
	require.NoError(t, err)

	gen := &captureGenerator{}
	pdfUC := NewPDFUseCase(repos.Invoices, repos.Users, repos.Customers, gen, money.NewFormatter("IDR"))

	data, name, err := pdfUC.DownloadInvoicePDF(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
	assert.Equal(t, "factura_INV-2405-0001.pdf", name)
	assert.Equal(t, "Rp 26.750", gen.doc.Total)
	assert.Equal(t, "11%", gen.doc.TaxRate)
	require.Len(t, gen.doc.Lines, 2)
	assert.Equal(t, "Rp 20.000", gen.doc.Lines[0].Total)
	assert.Nil(t, gen.doc.Customer)

	_, _, err = pdfUC.DownloadInvoicePDF(ctx, "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, _, err = pdfUC.DownloadInvoicePDF(ctx, "u1", "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
