package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabloom/progress-engine/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	_, err := store.Load(ctx, "stats")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Save(ctx, "stats", []byte(`{"xp":10}`)))

	got, err := store.Load(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"xp":10}`), got)

	require.NoError(t, store.Save(ctx, "stats", []byte(`{"xp":20}`)))

	got, err = store.Load(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"xp":20}`), got)

	require.NoError(t, store.Delete(ctx, "stats"))
	require.NoError(t, store.Delete(ctx, "stats"), "deleting an absent key is a no-op")

	_, err = store.Load(ctx, "stats")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CopiesValues(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, store.Save(ctx, "k", value))
	value[0] = 'X'

	got, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got, "the store must not share the caller's slice")

	got[0] = 'Y'

	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again, "loaded slices must not alias the stored value")
}
