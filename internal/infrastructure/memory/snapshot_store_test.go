package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshotStore()

	_, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`{"inventory":[]}`)
	require.NoError(t, s.Save(ctx, "k", payload))
	payload[0] = 'X'

	got, found, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"inventory":[]}`, string(got), "el store guarda una copia")

	require.NoError(t, s.Delete(ctx, "k"))
	_, found, _ = s.Load(ctx, "k")
	assert.False(t, found)
}
