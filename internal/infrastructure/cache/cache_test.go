package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/skyscraper-flight-search/internal/infrastructure/timeutil"
)

type routeKey struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint("flights", routeKey{"JFK", "LHR", "2025-06-01"})
	require.NoError(t, err)
	b, err := Fingerprint("flights", routeKey{"JFK", "LHR", "2025-06-01"})
	require.NoError(t, err)
	c, err := Fingerprint("flights", routeKey{"JFK", "LHR", "2025-06-02"})
	require.NoError(t, err)

	assert.Equal(t, a, b, "equal payloads yield equal keys")
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^flights:[0-9a-f]{64}$`, a)

	_, err = Fingerprint("bad", func() {})
	assert.Error(t, err)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	clock.Advance(59 * time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.True(t, ok, "still fresh just before the ttl")

	clock.Advance(time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok, "expired at the ttl")
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_OverwriteReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	require.NoError(t, store.Set(ctx, "k", []byte("one"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("two"), 0))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("two"), got)
}

func TestEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	cachedAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore(timeutil.NewMockClock(cachedAt))

	payload := routeKey{"JFK", "LHR", "2025-06-01"}
	require.NoError(t, SetEntry(ctx, store, "route", payload, cachedAt, time.Minute))

	entry, ok, err := GetEntry[routeKey](ctx, store, "route")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, entry.Payload)
	assert.True(t, cachedAt.Equal(entry.CachedAt))

	_, ok, err = GetEntry[routeKey](ctx, store, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetEntry_UndecodableIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	require.NoError(t, store.Set(ctx, "k", []byte("not json"), time.Minute))

	_, ok, err := GetEntry[routeKey](ctx, store, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := NewRedisStore(ctx, RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), RedisConfig{Addr: addr})
	assert.Error(t, err)
}

func TestNoOpStore(t *testing.T) {
	ctx := context.Background()
	store := NewNoOpStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}
