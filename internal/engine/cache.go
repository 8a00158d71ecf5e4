package engine

import (
	"regexp"
	"sync"
)

// ExistenceCache memoizes boolean probe results ("does command X exist")
// under a capacity bound. Eviction is FIFO: entries are never touched on a
// hit, and when the bound is exceeded a batch of the oldest entries is
// dropped rather than one entry per insert.
type ExistenceCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]bool
	order    []string // insertion order, front = oldest
}

// NewExistenceCache creates a cache bounded to capacity entries.
// A capacity below one is raised to one.
func NewExistenceCache(capacity int) *ExistenceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &ExistenceCache{
		capacity: capacity,
		entries:  make(map[string]bool),
	}
}

// Lookup returns the cached value for key and whether it was present.
func (c *ExistenceCache) Lookup(key string) (value, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok = c.entries[key]
	return value, ok
}

// Insert stores key→value and evicts if the cache grew past its capacity.
// Re-inserting an existing key updates the value without changing its age.
func (c *ExistenceCache) Insert(key string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = value
	c.evictIfOverCapacity()
}

// Len returns the current number of entries.
func (c *ExistenceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictIfOverCapacity removes max(1, capacity/2) of the oldest entries once
// the size exceeds the bound, then reconciles the order list against the map
// so partial or duplicate state cannot accumulate. Caller holds c.mu.
func (c *ExistenceCache) evictIfOverCapacity() {
	if len(c.entries) <= c.capacity {
		return
	}

	n := c.capacity / 2
	if n < 1 {
		n = 1
	}
	if n > len(c.order) {
		n = len(c.order)
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	c.order = c.order[n:]

	if len(c.order) != len(c.entries) {
		kept := make([]string, 0, len(c.entries))
		for _, key := range c.order {
			if _, ok := c.entries[key]; ok {
				kept = append(kept, key)
			}
		}
		c.order = kept
	}
}

// unsafeKeyChars matches every byte that is not valid in a cache key.
var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// CacheKey builds a cache key from a namespace tag and a probe name,
// replacing characters outside [A-Za-z0-9_] with underscores. The namespace
// keeps command and function probes from colliding.
func CacheKey(namespace, name string) string {
	return namespace + "_" + unsafeKeyChars.ReplaceAllString(name, "_")
}
