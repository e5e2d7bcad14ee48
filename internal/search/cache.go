package search

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/pkg/errors"
	"techdeals/dealsearcher/services/cache"
)

// ResultCache stores fetched deal lists keyed by (retailer, normalized
// query, category) on top of a CacheService. Cache errors degrade to
// misses; a duplicate fetch is wasted work, not a fault.
type ResultCache struct {
	svc cache.CacheService
	ttl time.Duration
	log *logger.Logger
}

// NewResultCache creates a result cache with the given TTL
func NewResultCache(svc cache.CacheService, ttl time.Duration) *ResultCache {
	return &ResultCache{
		svc: svc,
		ttl: ttl,
		log: logger.ForCache(),
	}
}

// Get returns the cached deals for a task key, if present and fresh
func (c *ResultCache) Get(retailer, query string, category deal.ProductCategory) ([]deal.Deal, bool) {
	data, err := c.svc.Get(resultKey(retailer, query, category))
	if err != nil {
		if err != cache.ErrCacheMiss {
			c.log.Warn().Err(errors.NewCache(retailer, "read failed", err)).Msg("Cache read failed")
		}
		return nil, false
	}

	var deals []deal.Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		c.log.Warn().Err(err).Str("retailer", retailer).Msg("Discarding undecodable cache entry")
		return nil, false
	}
	return deals, true
}

// Set records the deals fetched for a task key
func (c *ResultCache) Set(retailer, query string, category deal.ProductCategory, deals []deal.Deal) {
	data, err := json.Marshal(deals)
	if err != nil {
		c.log.Warn().Err(err).Str("retailer", retailer).Msg("Failed to encode deals for cache")
		return
	}
	if err := c.svc.Set(resultKey(retailer, query, category), data, c.ttl); err != nil {
		c.log.Warn().Err(errors.NewCache(retailer, "write failed", err)).Msg("Cache write failed")
	}
}

// resultKey builds the cache key. Spaces are not legal in memcache keys,
// so all components are underscore-joined.
func resultKey(retailer, query string, category deal.ProductCategory) string {
	sanitize := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "_")
	}
	return fmt.Sprintf("deals:%s:%s:%s", sanitize(retailer), sanitize(normalizeQuery(query)), category)
}
