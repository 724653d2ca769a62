// pkg/memcache/search_cache.go
package mem

import (
	"sync"
	"time"
)

// SearchResultCache remembers completed search results per destination term
// so a repeat search within the TTL skips the content API round trip. It
// also tracks the most recently completed result for the list view.
type SearchResultCache interface {
	Get(term string) (interface{}, bool)
	Set(term string, v interface{}, ttl time.Duration)
	Last() (interface{}, bool)
}

type searchCacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

type inMemorySearchCache struct {
	mu       sync.RWMutex
	store    map[string]searchCacheEntry
	lastTerm string
}

func NewSearchResultCache() SearchResultCache {
	return &inMemorySearchCache{store: make(map[string]searchCacheEntry)}
}

func (c *inMemorySearchCache) Get(term string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[term]
	if !ok || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

func (c *inMemorySearchCache) Set(term string, v interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[term] = searchCacheEntry{value: v, expiresAt: time.Now().Add(ttl)}
	c.lastTerm = term
}

func (c *inMemorySearchCache) Last() (interface{}, bool) {
	c.mu.RLock()
	last := c.lastTerm
	c.mu.RUnlock()
	if last == "" {
		return nil, false
	}
	return c.Get(last)
}
