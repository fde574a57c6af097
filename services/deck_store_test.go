package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeckStore(t *testing.T) *DeckStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDeckStore(client)
}

func TestDeckStore_SaveResetsCursor(t *testing.T) {
	ctx := context.Background()
	store := newTestDeckStore(t)

	require.NoError(t, store.Save(ctx, "viewer", []string{"a", "b", "c"}))
	_, err := store.Advance(ctx, "viewer")
	require.NoError(t, err)

	// Re-saving is a recompute: order replaced, cursor back at the top.
	require.NoError(t, store.Save(ctx, "viewer", []string{"c", "a"}))

	ids, cursor, err := store.Load(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, ids)
	assert.Equal(t, 0, cursor)
}

func TestDeckStore_AdvanceMovesCursor(t *testing.T) {
	ctx := context.Background()
	store := newTestDeckStore(t)

	require.NoError(t, store.Save(ctx, "viewer", []string{"a", "b"}))

	cursor, err := store.Advance(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, 1, cursor)

	_, cursor, err = store.Load(ctx, "viewer")
	require.NoError(t, err)
	assert.Equal(t, 1, cursor)
}

func TestDeckStore_LoadMissingDeck(t *testing.T) {
	ctx := context.Background()
	store := newTestDeckStore(t)

	ids, cursor, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, 0, cursor)
}

func TestDeckStore_Invalidate(t *testing.T) {
	ctx := context.Background()
	store := newTestDeckStore(t)

	require.NoError(t, store.Save(ctx, "viewer", []string{"a"}))
	store.Invalidate(ctx, "viewer")

	ids, _, err := store.Load(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDeckStore_SaveEmptyDeck(t *testing.T) {
	ctx := context.Background()
	store := newTestDeckStore(t)

	// An exhausted pool is a valid deck: no ids, cursor present.
	require.NoError(t, store.Save(ctx, "viewer", nil))

	ids, cursor, err := store.Load(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, 0, cursor)
}

func TestDeckStore_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := &DeckStore{Client: client, TTL: time.Minute}

	require.NoError(t, store.Save(ctx, "viewer", []string{"a"}))
	mr.FastForward(2 * time.Minute)

	ids, _, err := store.Load(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
