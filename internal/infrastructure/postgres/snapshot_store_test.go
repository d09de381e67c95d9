package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres
func TestSnapshotStore_SaveEscribeProyeccion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	defer pool.Close()

	key := "test:" + uuid.NewString()
	defer func() {
		_, _ = pool.Exec(ctx, `DELETE FROM ledger_snapshots WHERE storage_key = $1`, key)
	}()

	store := NewSnapshotStore(pool)
	l := ledger.New(nil)
	require.NoError(t, l.RecordOrder("Fruits", "Apples", 4))
	payload, err := l.Serialize().Encode()
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, key, payload))

	got, found, err := store.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, string(payload), string(got))

	rows, err := NewStockProjectionRepository(pool).List(ctx, key)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Apples", rows[0].Product)
	assert.Equal(t, "6", rows[0].Quantity.String())
}
