package cache

import (
	"sync"
	"time"

	"github.com/aleccaputo/sanguine-web/internal/metrics"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a process-wide TTL cache keyed by string. Entries are replaced
// whole, so concurrent refreshes are last-writer-wins; that is acceptable
// because every entry is an idempotent function of its key. Negative results
// are first-class: callers may Set a nil value to remember a failed lookup
// for the same TTL window.
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
}

// New creates a cache with the given TTL. The name labels the hit/miss
// metrics for this cache.
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return NewWithClock[V](name, ttl, time.Now)
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock[V any](name string, ttl time.Duration, now func() time.Time) *Cache[V] {
	return &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key, or the zero value and false when the
// key is absent or its entry has outlived the TTL.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		metrics.CacheMisses.WithLabelValues(c.name).Inc()
		return zero, false
	}
	metrics.CacheHits.WithLabelValues(c.name).Inc()
	return e.value, true
}

// Set stores value under key, replacing any existing entry and resetting its
// TTL window.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
	c.mu.Unlock()
}
