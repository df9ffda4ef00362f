// Package xxhash provides the in-memory pagesift.Cache implementation,
// keyed by 64-bit xxhash digests of the URL. Entries are immutable once
// written; only the mapping itself is guarded by a mutex.
package xxhash

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pagesift/pagesift"
)

const (
	// DefaultTTL is how long an entry stays valid. Expiry is lazy:
	// stale entries are dropped when looked up, never swept.
	DefaultTTL = time.Hour

	// DefaultCapacity bounds the number of live entries. Inserting
	// beyond it evicts the globally oldest entry first.
	DefaultCapacity = 50
)

// Ensure Cache implements pagesift.Cache at compile time.
var _ pagesift.Cache = (*Cache)(nil)

type entry struct {
	at     time.Time
	result string
}

// Cache memoizes formatted extraction results per URL for a bounded
// time window with bounded capacity. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]entry

	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the entry time-to-live.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithCapacity sets the maximum number of entries.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// WithClock sets the time source. Useful for testing expiry without
// real waits.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates an empty Cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries:  make(map[uint64]entry),
		ttl:      DefaultTTL,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached result for the URL. An entry older than the
// TTL is removed and reported as a miss.
func (c *Cache) Get(url string) (string, bool) {
	key := xxhash.Sum64String(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.at) >= c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.result, true
}

// Put stores the result for the URL. When the cache is at capacity and
// the URL is not already present, the entry with the oldest timestamp
// is evicted first.
func (c *Cache) Put(url string, result string) {
	key := xxhash.Sum64String(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = entry{at: c.now(), result: result}
}

// evictOldest removes the entry with the smallest timestamp.
// Caller must hold the mutex.
func (c *Cache) evictOldest() {
	var oldestKey uint64
	var oldestAt time.Time
	first := true
	for k, e := range c.entries {
		if first || e.at.Before(oldestAt) {
			first = false
			oldestKey = k
			oldestAt = e.at
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]entry)
}

// Len reports the number of entries, including any not yet lazily
// expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
