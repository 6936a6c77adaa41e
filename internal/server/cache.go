package server

import (
	"sync"
	"time"

	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
)

// resultCache keeps the last full calculation for a short TTL so that
// dashboard polling does not hammer the upstream market data API. A TTL of
// zero disables caching entirely.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	results map[marketdata.Region]*index.Result
	fetched time.Time
	now     func() time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached results if they are still fresh.
func (c *resultCache) Get() (map[marketdata.Region]*index.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl <= 0 || c.results == nil {
		return nil, false
	}
	if c.now().Sub(c.fetched) > c.ttl {
		c.results = nil
		return nil, false
	}
	return c.results, true
}

// Set stores a fresh set of results.
func (c *resultCache) Set(results map[marketdata.Region]*index.Result) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = results
	c.fetched = c.now()
}
