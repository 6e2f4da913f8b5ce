package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabloom/progress-engine/internal/domain"
)

func openTestStore(t *testing.T, profile string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := Open(context.Background(), path, profile)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestOpen_RequiresProfile(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), ":memory:", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, "default")
	ctx := context.Background()

	_, err := store.Load(ctx, "stats")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Save(ctx, "stats", []byte(`{"xp":10}`)))

	got, err := store.Load(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"xp":10}`), got)

	require.NoError(t, store.Save(ctx, "stats", []byte(`{"xp":20}`)), "save must upsert")

	got, err = store.Load(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"xp":20}`), got)

	require.NoError(t, store.Delete(ctx, "stats"))
	require.NoError(t, store.Delete(ctx, "stats"), "deleting an absent key is a no-op")

	_, err = store.Load(ctx, "stats")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	store, err := Open(ctx, path, "default")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "progress", []byte(`{}`)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path, "default")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "progress")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), got)
}

func TestStore_ProfilesAreIsolated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	alice, err := Open(ctx, path, "alice")
	require.NoError(t, err)
	defer alice.Close()

	bob, err := Open(ctx, path, "bob")
	require.NoError(t, err)
	defer bob.Close()

	require.NoError(t, alice.Save(ctx, "stats", []byte(`{"xp":100}`)))

	_, err = bob.Load(ctx, "stats")
	require.ErrorIs(t, err, domain.ErrNotFound, "profiles must not see each other's records")

	got, err := alice.Load(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"xp":100}`), got)
}
