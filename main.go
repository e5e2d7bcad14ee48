package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"techdeals/dealsearcher/config"
	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/internal/search"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/services/cache"
	"techdeals/dealsearcher/services/publisher"
	"techdeals/dealsearcher/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("cache_backend", cfg.CacheBackend).
		Int("max_workers", cfg.MaxWorkers).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting application")

	categories, err := parseCategories(os.Getenv("SEARCH_CATEGORIES"))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid category selection")
	}
	searchTerm := os.Getenv("SEARCH_TERM")

	searcher := search.NewSearcher(cfg, newCacheService(cfg))

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.WatchInterval > 0 {
		runWatch(ctx, cancel, cfg, searcher, categories, searchTerm)
		return
	}

	runOnce(ctx, cfg, searcher, categories, searchTerm)
}

// newCacheService builds the configured cache backend
func newCacheService(cfg *config.Config) cache.CacheService {
	if cfg.CacheBackend == config.CacheBackendMemcache {
		logger.Info("Using memcache result cache at %s", cfg.MemcacheAddr)
		return cache.NewMemcacheService(cfg.MemcacheAddr)
	}
	return cache.NewMemoryService()
}

// parseCategories resolves a comma-separated category list; empty means all
func parseCategories(raw string) ([]deal.ProductCategory, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var categories []deal.ProductCategory
	for _, name := range strings.Split(raw, ",") {
		category, err := deal.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// runOnce performs a single search, prints the results, and optionally
// exports them to a JSON file
func runOnce(ctx context.Context, cfg *config.Config, searcher *search.Searcher, categories []deal.ProductCategory, searchTerm string) {
	log := logger.Default

	deals := searcher.SearchDeals(ctx, categories, searchTerm)

	for i, d := range deals {
		fmt.Printf("#%d %s (%s)\n", i+1, d.ProductName, d.Category.Label())
		fmt.Printf("    %s: $%.2f", d.Retailer, d.SalePrice)
		if d.DiscountPercentage > 0 {
			fmt.Printf(" (was $%.2f, %.2f%% off)", d.OriginalPrice, d.DiscountPercentage)
		}
		fmt.Println()
		if d.URL != "" {
			fmt.Printf("    %s\n", d.URL)
		}
	}

	if cfg.ExportFile != "" {
		if err := searcher.ExportJSON(cfg.ExportFile); err != nil {
			log.Error().Err(err).Str("file", cfg.ExportFile).Msg("Export failed")
		}
	}
}

// runWatch runs the interval search worker until a shutdown signal arrives
func runWatch(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, searcher *search.Searcher, categories []deal.ProductCategory, searchTerm string) {
	log := logger.Default

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	defer redisPublisher.Close()

	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	w := worker.NewWorker(ctx, searcher, redisPublisher, categories, searchTerm, cfg.WatchInterval)

	workerDone := make(chan error, 1)
	go func() {
		log.Info().Dur("interval", cfg.WatchInterval).Msg("Starting deal watch worker")
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		<-workerDone
	case err := <-workerDone:
		if err != nil {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	log.Info().Msg("Shutting down gracefully...")
}
