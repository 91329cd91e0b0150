package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a store with a controllable clock.
func newTestStore(defaultTTL time.Duration) (*Store, *time.Time) {
	s := NewStore(defaultTTL)
	now := time.Now()
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_SetAndGet(t *testing.T) {
	s, _ := newTestStore(0)

	s.Set("k", "v", time.Minute)

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := newTestStore(0)

	v, ok := s.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_GetExpired_EvictsEntry(t *testing.T) {
	s, now := newTestStore(0)

	s.Set("k", "v", time.Minute)
	*now = now.Add(time.Minute + time.Second)

	v, ok := s.Get("k")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 0, s.Len(), "stale entry must be evicted on access")
}

func TestStore_Set_OverwritesAndRestampsClock(t *testing.T) {
	s, now := newTestStore(0)

	s.Set("k", "old", time.Minute)
	*now = now.Add(50 * time.Second)
	s.Set("k", "new", time.Minute)

	// 50s later the second write is still fresh.
	*now = now.Add(50 * time.Second)
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestStore_DefaultTTL(t *testing.T) {
	s, now := newTestStore(10 * time.Second)

	s.Set("k", "v", 0) // falls back to store default

	*now = now.Add(9 * time.Second)
	_, ok := s.Get("k")
	assert.True(t, ok)

	*now = now.Add(2 * time.Second)
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestStore_DeleteAndClear(t *testing.T) {
	s, _ := newTestStore(0)

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)

	s.Delete("a")
	s.Delete("a") // idempotent
	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Clear()
	_, ok = s.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_CleanExpired(t *testing.T) {
	s, now := newTestStore(0)

	s.Set("fresh", 1, time.Hour)
	s.Set("stale", 2, time.Second)
	*now = now.Add(2 * time.Second)

	s.CleanExpired()

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("fresh")
	assert.True(t, ok)
}

func TestWrapFetch_CachesProducerResult(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	calls := 0
	producer := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	v, err := WrapFetch(ctx, s, "list", producer, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)

	v, err = WrapFetch(ctx, s, "list", producer, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)
	assert.Equal(t, 1, calls, "second call must be served from cache")
}

func TestWrapFetch_ProducerErrorNotCached(t *testing.T) {
	s, _ := newTestStore(0)
	ctx := context.Background()

	boom := errors.New("boom")
	calls := 0
	producer := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	_, err := WrapFetch(ctx, s, "k", producer, time.Minute)
	require.ErrorIs(t, err, boom)

	v, err := WrapFetch(ctx, s, "k", producer, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestKey_Deterministic(t *testing.T) {
	a := Key("products", map[string]string{"page": "1", "page_size": "20"})
	b := Key("products", map[string]string{"page_size": "20", "page": "1"})
	assert.Equal(t, a, b)
	assert.Equal(t, "products_page=1&page_size=20", a)
}

func TestKey_NoParams(t *testing.T) {
	assert.Equal(t, "products", Key("products", nil))
	assert.Equal(t, "products", Key("products", map[string]string{}))
}
