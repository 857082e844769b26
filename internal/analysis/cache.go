package analysis

import (
	"sync"
	"time"

	"github.com/dilharaj/airgallery/internal/metrics"
)

type cacheEntry struct {
	ready      chan struct{} // closed once meta/err are set
	meta       *Metadata
	err        error
	computedAt time.Time
}

// Cache memoizes metadata records for the process lifetime. It grows
// monotonically and is bounded only by the number of distinct images in
// the served directory; the server treats that directory as read-only,
// so entries are never invalidated.
//
// Concurrent GetOrCompute calls for the same uncached filename coordinate
// so the compute function runs at most once: the first caller computes
// while the rest wait on the entry's ready channel. Distinct filenames
// proceed fully in parallel. Failed computations (a vanished file) are
// not memoized, so a later request can succeed if the file reappears.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// GetOrCompute returns the cached record for filename, invoking compute
// on the first request. Callers always receive a deep copy; cached
// records are owned by the cache and never handed out mutably.
func (c *Cache) GetOrCompute(filename string, compute func() (*Metadata, error)) (*Metadata, error) {
	c.mu.Lock()
	if e, ok := c.entries[filename]; ok {
		c.mu.Unlock()
		metrics.CacheHitsTotal.Inc()
		<-e.ready
		if e.err != nil {
			return nil, e.err
		}
		return e.meta.Clone(), nil
	}

	e := &cacheEntry{ready: make(chan struct{})}
	c.entries[filename] = e
	c.mu.Unlock()
	metrics.CacheMissesTotal.Inc()

	meta, err := compute()
	e.meta = meta
	e.err = err
	e.computedAt = time.Now()

	if err != nil {
		// Drop the entry before waking waiters so the next request
		// retries instead of observing a permanent failure.
		c.mu.Lock()
		delete(c.entries, filename)
		c.mu.Unlock()
	} else {
		metrics.CachedRecords.Set(float64(c.Len()))
	}
	close(e.ready)

	if err != nil {
		return nil, err
	}
	return meta.Clone(), nil
}

// Len reports the number of cached records.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
