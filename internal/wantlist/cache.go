package wantlist

import (
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// expansionCache keeps recent expansions keyed by item snapshot, ignored
// categories, item and quantity.
type expansionCache struct {
	lru *expirable.LRU[string, domain.WantListResolvedEntry]
}

func newExpansionCache(size int, ttl time.Duration) *expansionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &expansionCache{
		lru: expirable.NewLRU[string, domain.WantListResolvedEntry](size, nil, ttl),
	}
}

func cacheKey(snapshot, ignored, itemID string, qty int) string {
	return strings.Join([]string{snapshot, ignored, itemID, strconv.Itoa(qty)}, cacheKeySeparator)
}

// Get returns a cached expansion.
func (c *expansionCache) Get(key string) (domain.WantListResolvedEntry, bool) {
	return c.lru.Get(key)
}

func (c *expansionCache) Set(key string, resolved domain.WantListResolvedEntry) {
	c.lru.Add(key, resolved)
}

// Clear removes all entries from the cache.
func (c *expansionCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached expansions.
func (c *expansionCache) Len() int {
	return c.lru.Len()
}
