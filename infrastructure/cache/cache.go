package cache

import (
	"reflect"
	"sync"
	"time"
)

// entry is a single cached value with its insertion time. Entries are never
// mutated in place; a Set on an existing key replaces the whole entry.
type entry[T any] struct {
	value      T
	insertedAt time.Time
}

// EntryStatus describes one cache key for operational inspection.
type EntryStatus struct {
	AgeSeconds int64 `json:"age_seconds"`
	Expired    bool  `json:"expired"`
	ItemCount  int   `json:"item_count,omitempty"`
}

// Cache is an in-memory key-value store with a fixed freshness window per
// instance. Expiry is computed at read time; stale entries are not purged,
// they are simply not returned by Get until a later Set replaces them.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option[T any] func(*Cache[T])

// WithClock overrides the time source. Tests use this to simulate elapsed
// time instead of sleeping.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Cache[T]) {
		c.now = now
	}
}

// New creates a cache whose entries stay fresh for ttl after insertion.
func New[T any](ttl time.Duration, opts ...Option[T]) *Cache[T] {
	c := &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key if it exists and is still fresh.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.value, true
}

// GetStale returns the value for key regardless of freshness. Callers use
// this only as a fallback when the authoritative source is unreachable.
func (c *Cache[T]) GetStale(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with a fresh timestamp, replacing any previous
// entry.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{value: value, insertedAt: c.now()}
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[T])
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Status reports age and validity for every stored key. For slice values the
// element count is included as well.
func (c *Cache[T]) Status() map[string]EntryStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	status := make(map[string]EntryStatus, len(c.entries))
	for key, e := range c.entries {
		age := now.Sub(e.insertedAt)
		s := EntryStatus{
			AgeSeconds: int64(age.Seconds()),
			Expired:    age >= c.ttl,
		}
		if v := reflect.ValueOf(e.value); v.IsValid() && v.Kind() == reflect.Slice {
			s.ItemCount = v.Len()
		}
		status[key] = s
	}
	return status
}
