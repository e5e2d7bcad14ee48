package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"techdeals/dealsearcher/pkg/errors"
)

// Cache backend names accepted by CACHE_BACKEND
const (
	CacheBackendMemory   = "memory"
	CacheBackendMemcache = "memcache"
)

// Config represents the application configuration
type Config struct {
	// Search configuration
	MaxResultsPerRetailer int
	MaxWorkers            int
	RequestDelay          time.Duration
	CacheTTL              time.Duration

	// Cache backend
	CacheBackend string
	MemcacheAddr string

	// Redis configuration (watch mode publisher)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Watch mode; zero interval means a single one-shot search
	WatchInterval time.Duration
	ExportFile    string

	// Retailer search URL templates, %s is the escaped query
	BestBuySearchURL     string
	NeweggSearchURL      string
	MicroCenterSearchURL string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	maxResults, _ := strconv.Atoi(getEnv("MAX_RESULTS_PER_RETAILER", "5"))
	maxWorkers, _ := strconv.Atoi(getEnv("MAX_WORKERS", "6"))
	requestDelayMs, _ := strconv.Atoi(getEnv("REQUEST_DELAY_MS", "0"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisStreamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	redisStreamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	watchInterval, _ := strconv.Atoi(getEnv("WATCH_INTERVAL_SECONDS", "0"))

	return &Config{
		MaxResultsPerRetailer: maxResults,
		MaxWorkers:            maxWorkers,
		RequestDelay:          time.Duration(requestDelayMs) * time.Millisecond,
		CacheTTL:              time.Duration(cacheTTL) * time.Second,
		CacheBackend:          getEnv("CACHE_BACKEND", CacheBackendMemory),
		MemcacheAddr:          getEnv("MEMCACHE_ADDR", "localhost:11211"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               redisDB,
		RedisStream:           getEnv("REDIS_STREAM", "deals"),
		RedisStreamCount:      redisStreamCount,
		RedisStreamMaxLength:  redisStreamMaxLen,
		WatchInterval:         time.Duration(watchInterval) * time.Second,
		ExportFile:            getEnv("EXPORT_FILE", ""),
		BestBuySearchURL:      getEnv("BESTBUY_SEARCH_URL", "https://www.bestbuy.com/site/searchpage.jsp?st=%s"),
		NeweggSearchURL:       getEnv("NEWEGG_SEARCH_URL", "https://www.newegg.com/p/pl?d=%s"),
		MicroCenterSearchURL:  getEnv("MICROCENTER_SEARCH_URL", "https://www.microcenter.com/search/search_results.aspx?Ntt=%s"),
		Environment:           getEnv("DEALSEARCH_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.MaxResultsPerRetailer < 1 {
		return errors.NewConfiguration("MAX_RESULTS_PER_RETAILER must be at least 1", nil)
	}
	if c.MaxWorkers < 1 {
		return errors.NewConfiguration("MAX_WORKERS must be at least 1", nil)
	}
	if c.RequestDelay < 0 {
		return errors.NewConfiguration("REQUEST_DELAY_MS must not be negative", nil)
	}
	if c.CacheTTL <= 0 {
		return errors.NewConfiguration("CACHE_TTL_SECONDS must be positive", nil)
	}
	switch c.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendMemcache:
		if c.MemcacheAddr == "" {
			return errors.NewConfiguration("MEMCACHE_ADDR is required for the memcache backend", nil)
		}
	default:
		return errors.NewConfiguration(fmt.Sprintf("unknown cache backend %q", c.CacheBackend), nil)
	}
	if c.RedisStreamCount < 1 {
		return errors.NewConfiguration("REDIS_STREAM_COUNT must be at least 1", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
