package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}
	store, closeFn, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.SnapshotStore{}, store)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:     config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "ledger.db"),
	}}
	store, closeFn, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &sqlite.SnapshotStore{}, store)

	require.NoError(t, store.Save(ctx, "k", []byte(`{}`)))
	got, found, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{}`, string(got))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "redis"}}
	_, closeFn, err := Open(context.Background(), cfg)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
