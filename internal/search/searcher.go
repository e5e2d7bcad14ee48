package search

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"techdeals/dealsearcher/config"
	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/internal/scraper"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/services/cache"
)

// Searcher is the orchestrator: it builds one query per category, fans
// retailer×category tasks out through the scheduler, and aggregates the
// merged result set. The filter and sort helpers operate on the most
// recent result set without re-fetching.
type Searcher struct {
	extractors []scraper.Extractor
	scheduler  *Scheduler
	log        *logger.Logger

	mu    sync.Mutex
	deals []deal.Deal
}

// NewSearcher creates a searcher with the configured retailer set and an
// explicit cache instance; no hidden process-global state.
func NewSearcher(cfg *config.Config, cacheSvc cache.CacheService) *Searcher {
	return &Searcher{
		extractors: scraper.NewExtractors(cfg),
		scheduler:  NewScheduler(NewResultCache(cacheSvc, cfg.CacheTTL), cfg),
		log:        logger.ForSearcher(),
	}
}

// SearchDeals searches all retailers for the given categories (all
// categories when none are given) and an optional free-text term. An
// empty result is a valid outcome, not an error.
func (s *Searcher) SearchDeals(ctx context.Context, categories []deal.ProductCategory, searchTerm string) []deal.Deal {
	if len(categories) == 0 {
		categories = deal.AllCategories()
	}

	tasks := make([]Task, 0, len(categories)*len(s.extractors))
	for _, category := range categories {
		query := BuildQuery(category, searchTerm)
		for _, extractor := range s.extractors {
			tasks = append(tasks, Task{
				Retailer:  extractor.Retailer(),
				Extractor: extractor,
				Query:     query,
				Category:  category,
			})
		}
	}

	s.log.Info().
		Int("categories", len(categories)).
		Int("retailers", len(s.extractors)).
		Int("tasks", len(tasks)).
		Str("search_term", searchTerm).
		Msg("Searching for deals")

	merged := Merge(s.scheduler.Run(ctx, tasks))
	if len(merged) == 0 {
		s.log.Warn().Msg("No deals found")
	} else {
		s.log.Info().Int("deals", len(merged)).Msg("Search complete")
	}

	s.mu.Lock()
	s.deals = merged
	s.mu.Unlock()

	return merged
}

// Results returns the most recent search result set
func (s *Searcher) Results() []deal.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]deal.Deal, len(s.deals))
	copy(out, s.deals)
	return out
}

// FilterByCategory returns the deals from the last search matching a category
func (s *Searcher) FilterByCategory(category deal.ProductCategory) []deal.Deal {
	var filtered []deal.Deal
	for _, d := range s.Results() {
		if d.Category == category {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// FilterByMinDiscount returns the deals discounted at least minDiscount percent
func (s *Searcher) FilterByMinDiscount(minDiscount float64) []deal.Deal {
	var filtered []deal.Deal
	for _, d := range s.Results() {
		if d.DiscountPercentage >= minDiscount {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// FilterByMaxPrice returns the deals with a sale price at or below maxPrice
func (s *Searcher) FilterByMaxPrice(maxPrice float64) []deal.Deal {
	var filtered []deal.Deal
	for _, d := range s.Results() {
		if d.SalePrice <= maxPrice {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// SortByDiscount returns the last result set ordered by discount, best first
func (s *Searcher) SortByDiscount() []deal.Deal {
	sorted := s.Results()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DiscountPercentage > sorted[j].DiscountPercentage
	})
	return sorted
}

// SortByPrice returns the last result set ordered by sale price, cheapest first
func (s *Searcher) SortByPrice() []deal.Deal {
	sorted := s.Results()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SalePrice < sorted[j].SalePrice
	})
	return sorted
}

// Records returns the serializable projection of the last result set
func (s *Searcher) Records() []deal.Record {
	results := s.Results()
	records := make([]deal.Record, 0, len(results))
	for _, d := range results {
		records = append(records, d.ToRecord())
	}
	return records
}

// ExportJSON writes the last result set to a JSON file
func (s *Searcher) ExportJSON(filename string) error {
	data, err := json.MarshalIndent(s.Records(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}
	s.log.Info().Str("file", filename).Int("deals", len(s.Results())).Msg("Exported deals")
	return nil
}
