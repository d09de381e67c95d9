package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

func TestQuantity_NumeroOString(t *testing.T) {
	cases := map[string]Quantity{
		`{"quantity": 20}`:    "20",
		`{"quantity": "20"}`:  "20",
		`{"quantity": "abc"}`: "abc",
		`{"quantity": 2.5}`:   "2.5",
		`{"quantity": null}`:  "",
		`{}`:                  "",
	}
	for body, want := range cases {
		var in MovementRequest
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)
		assert.Equal(t, want, in.Quantity, body)
	}
}

func TestNewLogResponse_Paginacion(t *testing.T) {
	entries := make([]entity.LogEntry, 5)
	for i := range entries {
		entries[i] = entity.LogEntry{Category: "C", Product: "P", Quantity: i + 1, Timestamp: "t"}
	}

	out := NewLogResponse(entity.LogShipment, "newest", entries, PageRequest{Limit: 2, Offset: 3})
	assert.Equal(t, 5, out.Page.Total)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, 4, out.Entries[0].Quantity)

	out = NewLogResponse(entity.LogShipment, "newest", entries, PageRequest{Offset: 10})
	assert.Empty(t, out.Entries)
	assert.NotNil(t, out.Entries)
	assert.Equal(t, 50, out.Page.Limit)
}

func TestNewInventoryResponse_TotalUnits(t *testing.T) {
	out := NewInventoryResponse([]entity.Category{
		{Name: "A", Products: []entity.Product{{Name: "x", Quantity: 2}, {Name: "y", Quantity: 3}}},
		{Name: "B"},
	})
	assert.Equal(t, 5, out.TotalUnits)
	require.Len(t, out.Categories, 2)
	assert.NotNil(t, out.Categories[1].Products)
}
