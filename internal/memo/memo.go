// Package memo caches the results of pure functions keyed by the JSON
// encoding of their arguments. A Cache lives for the process (no eviction);
// the analysis batches are bounded so growth is bounded too.
package memo

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"birdscope/internal/metrics"
)

// Cache stores memoized results. Writes are idempotent (recomputing a key
// stores an equal value), so concurrent report generation needs no external
// locking beyond what sync.Map provides.
type Cache struct {
	entries sync.Map
	hits    atomic.Int64
	misses  atomic.Int64
}

// New returns an empty cache.
func New() *Cache { return &Cache{} }

// Key builds the canonical key for a function name and its arguments.
// Arguments must be JSON-encodable.
func Key(fn string, args ...any) string {
	b, _ := json.Marshal(args)
	return fn + ":" + string(b)
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool { n++; return true })
	return n
}

// Wrap memoizes a one-argument pure function in c under the given name.
// Cached values are returned as-is on hits, so callers must not mutate
// what the wrapped function hands back.
func Wrap[A, R any](c *Cache, name string, f func(A) R) func(A) R {
	return func(a A) R {
		k := Key(name, a)
		if v, ok := c.entries.Load(k); ok {
			c.hits.Add(1)
			metrics.IncCacheHit(name)
			return v.(R)
		}
		c.misses.Add(1)
		metrics.IncCacheMiss(name)
		r := f(a)
		c.entries.Store(k, r)
		return r
	}
}
