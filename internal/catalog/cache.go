package catalog

import (
	"sync"
	"time"
)

// Per-table staleness windows. These mirror how often each table changes in
// practice; the cache is an optimization only and failures bypass it.
var cacheTTLs = map[string]time.Duration{
	TableCulturalTexts:         5 * time.Minute,
	TablePrinciples:            5 * time.Minute,
	TableDesignRecommendations: 5 * time.Minute,
	TableProfiles:              10 * time.Minute,
	TableTechnologyTaxonomy:    15 * time.Minute,
}

type cacheEntry struct {
	value   interface{}
	expires time.Time
}

// ttlCache is a small read-through cache keyed by table + query shape.
type ttlCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newTTLCache() *ttlCache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *ttlCache) set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expires: c.now().Add(ttl)}
	c.mu.Unlock()
}

func tableTTL(table string) time.Duration {
	return cacheTTLs[table]
}
