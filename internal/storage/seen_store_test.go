package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbrief/internal/model"
)

func TestSeenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	store := NewSeenStore(path, 72)
	require.NoError(t, store.Load())

	store.MarkSeen(model.ArticleRecord{ID: "abc", Title: "Headline", SourceID: "bbc-world"})
	assert.True(t, store.IsSeen("abc"))
	assert.False(t, store.IsSeen("other"))
	require.NoError(t, store.Save())

	reloaded := NewSeenStore(path, 72)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsSeen("abc"))
	assert.Equal(t, 1, reloaded.Len())
}

func TestSeenStoreMissingFileIsEmpty(t *testing.T) {
	store := NewSeenStore(filepath.Join(t.TempDir(), "absent.json"), 72)

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
}

func TestSeenStoreTTLExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	// Zero TTL makes every entry immediately stale.
	store := NewSeenStore(path, 0)
	store.MarkSeen(model.ArticleRecord{ID: "abc"})

	assert.False(t, store.IsSeen("abc"))
	assert.Empty(t, store.SeenIDs())

	store.Prune()
	assert.Equal(t, 0, store.Len())
}

func TestSeenStoreSeenIDs(t *testing.T) {
	store := NewSeenStore(filepath.Join(t.TempDir(), "seen.json"), 72)
	store.MarkSeen(model.ArticleRecord{ID: "a"})
	store.MarkSeen(model.ArticleRecord{ID: "b"})

	ids := store.SeenIDs()
	assert.True(t, ids["a"])
	assert.True(t, ids["b"])
	assert.False(t, ids["c"])
}
