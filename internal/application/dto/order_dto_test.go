package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

func TestOrderLines_Lines(t *testing.T) {
	var req ReconcileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"direction":"reduce","products":[
		{"product_id":"A","quantity":2},
		{"id":"B","quantity":"3"},
		{"product_id":"C","quantity":""},
		"no-es-objeto"
	]}`), &req))

	assert.Equal(t, []entity.OrderLine{
		{ProductID: "A", Quantity: 2},
		{ID: "B", Quantity: 3},
		{ProductID: "C", Quantity: 0},
		{},
	}, req.Products.Lines())
}

func TestOrderLines_ColeccionInvalida(t *testing.T) {
	for _, body := range []string{
		`{"products":null}`,
		`{}`,
		`{"products":"A,B"}`,
		`{"products":{"product_id":"A"}}`,
	} {
		var req ReconcileRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Nil(t, req.Products.Lines(), body)
	}
}

func TestOrderLines_ListaVacia(t *testing.T) {
	var req ReconcileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"products":[]}`), &req))
	lines := req.Products.Lines()
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}
