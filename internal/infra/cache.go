package infra

import (
	"sync"
	"time"
)

// minSweep is the entry count at which Set first sweeps expired entries.
const minSweep = 64

// cacheEntry holds a cached value with expiration.
type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with a fixed TTL. Expired entries
// are dropped on lookup, and Set sweeps them whenever the map has doubled
// since the last sweep, so memory tracks the live entries.
type Cache[V any] struct {
	mu        sync.Mutex
	entries   map[string]cacheEntry[V]
	ttl       time.Duration
	nextSweep int
	now       func() time.Time
}

// NewCache creates a cache whose entries live for ttl.
func NewCache[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries:   make(map[string]cacheEntry[V]),
		ttl:       ttl,
		nextSweep: minSweep,
		now:       time.Now,
	}
}

// Get returns the value for key. The zero value and false are returned if
// the key is absent or expired; an expired entry is removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.entries[key] = cacheEntry[V]{value: value, expiresAt: now.Add(c.ttl)}
	if len(c.entries) >= c.nextSweep {
		c.sweep(now)
		c.nextSweep = max(minSweep, 2*len(c.entries))
	}
}

// sweep removes expired entries. Must be called with mu held.
func (c *Cache[V]) sweep(now time.Time) {
	for k, v := range c.entries {
		if now.After(v.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// size returns the number of stored entries, expired ones included.
func (c *Cache[V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
