package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestKVRoundTrip(t *testing.T) {
	st := openTestStore(t)
	kv := st.KV()
	ctx := context.Background()

	_, err := kv.Get(ctx, KeyAuthSession)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, KeyAuthSession, []byte(`{"user":null}`)))
	got, err := kv.Get(ctx, KeyAuthSession)
	require.NoError(t, err)
	assert.Equal(t, `{"user":null}`, string(got))

	// Overwrite.
	require.NoError(t, kv.Set(ctx, KeyAuthSession, []byte(`{}`)))
	got, err = kv.Get(ctx, KeyAuthSession)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	require.NoError(t, kv.Delete(ctx, KeyAuthSession))
	_, err = kv.Get(ctx, KeyAuthSession)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVList(t *testing.T) {
	st := openTestStore(t)
	kv := st.KV()
	ctx := context.Background()

	for _, k := range []string{"saved-assignments", "saved-notes", "plagiarism-reports"} {
		require.NoError(t, kv.Set(ctx, k, []byte("[]")))
	}

	keys, err := kv.List(ctx, "saved-")
	require.NoError(t, err)
	assert.Equal(t, []string{"saved-assignments", "saved-notes"}, keys)
}

func TestVaultRepoInsertListDelete(t *testing.T) {
	st := openTestStore(t)
	repo := st.VaultRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []VaultItem{
		{ID: "a", Tool: "Quiz Generator", Prompt: "photosynthesis", Response: "Q1...", CreatedAt: base},
		{ID: "b", Tool: "Humanizer", Prompt: "formal text", Response: "casual text", CreatedAt: base.Add(time.Hour)},
		{ID: "c", Tool: "Manual Entry", Prompt: "Q1", Response: "A1", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, it := range items {
		require.NoError(t, repo.Insert(ctx, it))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first.
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)

	ok, err := repo.Delete(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	ok, err = repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWipe(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.KV().Set(ctx, KeyAuthSession, []byte(`{}`)))
	require.NoError(t, st.VaultRepo().Insert(ctx, VaultItem{
		ID: "a", Tool: "Humanizer", Prompt: "p", Response: "r", CreatedAt: time.Now(),
	}))

	require.NoError(t, st.Wipe(ctx))

	_, err := st.KV().Get(ctx, KeyAuthSession)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	n, err := st.VaultRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
