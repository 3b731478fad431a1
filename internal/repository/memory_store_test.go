package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`{"showBanner":false}`)
	require.NoError(t, store.Set(ctx, "settings", value))

	// изменение исходного среза не влияет на сохранённое
	value[0] = 'x'

	got, found, err := store.Get(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"showBanner":false}`, string(got))

	require.NoError(t, store.Set(ctx, "settings", []byte("false")))
	got, _, _ = store.Get(ctx, "settings")
	assert.Equal(t, "false", string(got))
}
