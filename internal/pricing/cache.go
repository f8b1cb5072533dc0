package pricing

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// quoteCache provides an in-memory LRU cache for dynamic price lookups
// with time-based expiration, so bursts of pricing the same template do not
// hammer the live offer board.
type quoteCache struct {
	lru *expirable.LRU[string, float64]
}

// newQuoteCache creates a new quote cache with the specified size and TTL.
// size: maximum number of cached quotes
// ttl: time-to-live for cached entries
func newQuoteCache(size int, ttl time.Duration) *quoteCache {
	return &quoteCache{
		lru: expirable.NewLRU[string, float64](size, nil, ttl),
	}
}

// Get retrieves a cached quote. Cached values are already normalized to the
// listing floor, so callers can return them as-is.
func (c *quoteCache) Get(id string) (float64, bool) {
	return c.lru.Get(id)
}

// Set stores a normalized quote.
func (c *quoteCache) Set(id string, price float64) {
	c.lru.Add(id, price)
}

// Invalidate removes a quote from the cache. Called when the offer board
// changes out from under us.
func (c *quoteCache) Invalidate(id string) {
	c.lru.Remove(id)
}
