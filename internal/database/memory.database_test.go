package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "things", "a", testDoc{Name: "first", Count: 1}))

	var got testDoc
	found, err := store.Get(ctx, "things", "a", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, 1, got.Count)
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := NewMemoryStore()

	var got testDoc
	found, err := store.Get(context.Background(), "things", "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreSetOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "things", "a", testDoc{Name: "first"}))
	require.NoError(t, store.Set(ctx, "things", "a", testDoc{Name: "second"}))

	var got testDoc
	found, err := store.Get(ctx, "things", "a", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "second", got.Name)
}

func TestMemoryStoreUpdateFieldMergesTopLevel(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "things", "a", testDoc{
		Name:  "keepme",
		Tags:  []string{"old"},
		Count: 7,
	}))

	require.NoError(t, store.UpdateField(ctx, "things", "a", "tags", []string{"new", "tags"}))

	var got testDoc
	found, err := store.Get(ctx, "things", "a", &got)
	require.NoError(t, err)
	require.True(t, found)

	// Only the named field changes; siblings stay intact.
	assert.Equal(t, []string{"new", "tags"}, got.Tags)
	assert.Equal(t, "keepme", got.Name)
	assert.Equal(t, 7, got.Count)
}

func TestMemoryStoreUpdateFieldAbsentDocument(t *testing.T) {
	store := NewMemoryStore()

	err := store.UpdateField(context.Background(), "things", "missing", "tags", []string{"x"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryStoreCollectionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "left", "a", testDoc{Name: "left-doc"}))

	var got testDoc
	found, err := store.Get(ctx, "right", "a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
