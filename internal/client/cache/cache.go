// Package cache implements a process-wide in-memory store with per-entry
// expiration, used to memoize idempotent backend reads.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is applied when Set is called with a non-positive ttl.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.storedAt) > e.ttl
}

// Store is a keyed TTL cache. The zero value is not usable; construct with
// NewStore. All methods are safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

// NewStore returns an empty Store. A non-positive defaultTTL falls back to
// DefaultTTL.
func NewStore(defaultTTL time.Duration) *Store {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Store{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the value stored under key, if present and not expired.
// A stale entry is discarded on access.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(s.now()) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set unconditionally stores value under key, stamping the current time.
// A non-positive ttl uses the store default.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, storedAt: s.now(), ttl: ttl}
}

// Delete removes the entry under key. Idempotent.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear empties the whole store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// CleanExpired removes every stale entry. Get already self-heals, so this is
// only needed to bound memory growth under sustained traffic.
func (s *Store) CleanExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of entries currently held, including stale ones not
// yet evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// WrapFetch returns the cached value under key if fresh; otherwise it invokes
// producer, stores the result under key with ttl, and returns it. Nothing is
// cached when producer fails. Concurrent callers for the same key may each
// invoke producer independently; there is no in-flight deduplication.
func WrapFetch[T any](ctx context.Context, s *Store, key string, producer func(context.Context) (T, error), ttl time.Duration) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := producer(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.Set(key, v, ttl)
	return v, nil
}

// Key builds a deterministic cache key from a prefix and request parameters:
// params are sorted by name and joined as "k=v&k=v". Two logically identical
// parameter sets always produce the same key regardless of map iteration
// order. Empty params yield the prefix alone.
func Key(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}
