package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	_, found, err := s.Load(ctx, "inventoryAppData")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "inventoryAppData", []byte(`{"inventory":[],"shipment":[],"order":[]}`)))
	require.NoError(t, s.Save(ctx, "inventoryAppData", []byte(`{"inventory":[{"category":"Dairy","products":[]}],"shipment":[],"order":[]}`)))
	require.NoError(t, s.Close())

	// Reabrir: el contenido sobrevive entre sesiones
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, found, err := s.Load(ctx, "inventoryAppData")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"inventory":[{"category":"Dairy","products":[]}],"shipment":[],"order":[]}`, string(got))

	_, found, err = s.Load(ctx, "otra-clave")
	require.NoError(t, err)
	assert.False(t, found)
}
