package search

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"techdeals/dealsearcher/config"
	"techdeals/dealsearcher/helpers"
	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/internal/scraper"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/pkg/errors"
)

// Task is one (retailer, query, category) unit of fetch-and-extract work
type Task struct {
	Retailer  string
	Extractor scraper.Extractor
	Query     string
	Category  deal.ProductCategory
}

// TaskResult carries the deals one task produced; failed tasks produce
// an empty result rather than an error
type TaskResult struct {
	Task  Task
	Deals []deal.Deal
}

// FetchFunc performs the outbound page fetch for a task
type FetchFunc func(url string) (io.Reader, error)

// Scheduler executes fetch-and-extract tasks over a bounded worker pool.
// Task failures are isolated: a failing retailer never aborts its
// siblings, it just contributes zero deals.
type Scheduler struct {
	cache      *ResultCache
	fetch      FetchFunc
	maxWorkers int
	maxResults int
	delay      time.Duration
	log        *logger.Logger
}

// NewScheduler creates a scheduler backed by the shared result cache
func NewScheduler(resultCache *ResultCache, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cache:      resultCache,
		fetch:      helpers.FetchPage,
		maxWorkers: cfg.MaxWorkers,
		maxResults: cfg.MaxResultsPerRetailer,
		delay:      cfg.RequestDelay,
		log:        logger.ForScheduler(),
	}
}

// Run executes the tasks and streams results as they complete. Result
// order across tasks is not guaranteed. The channel is closed once every
// dispatched task has reported.
func (s *Scheduler) Run(ctx context.Context, tasks []Task) <-chan TaskResult {
	results := make(chan TaskResult, len(tasks))

	if len(tasks) > 1 && s.maxWorkers > 1 {
		go s.runParallel(ctx, tasks, results)
	} else {
		go s.runSequential(ctx, tasks, results)
	}

	return results
}

// runParallel fans tasks out over min(maxWorkers, len(tasks)) workers
func (s *Scheduler) runParallel(ctx context.Context, tasks []Task, results chan<- TaskResult) {
	defer close(results)

	workers := s.maxWorkers
	if len(tasks) < workers {
		workers = len(tasks)
	}

	taskCh := make(chan Task)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				results <- TaskResult{Task: t, Deals: s.runTask(t)}
			}
		}()
	}

	// Stop dispatching on cancellation; tasks already picked up run to
	// completion.
	for _, t := range tasks {
		select {
		case taskCh <- t:
		case <-ctx.Done():
			s.log.Warn().Err(ctx.Err()).Msg("Dispatch stopped")
			close(taskCh)
			wg.Wait()
			return
		}
	}
	close(taskCh)
	wg.Wait()
}

// runSequential executes tasks one by one with an optional inter-task
// delay, used to self-throttle against a single retailer
func (s *Scheduler) runSequential(ctx context.Context, tasks []Task, results chan<- TaskResult) {
	defer close(results)

	for i, t := range tasks {
		if ctx.Err() != nil {
			s.log.Warn().Err(ctx.Err()).Msg("Dispatch stopped")
			return
		}
		if i > 0 && s.delay > 0 {
			time.Sleep(s.delay)
		}
		results <- TaskResult{Task: t, Deals: s.runTask(t)}
	}
}

// runTask executes one task: cache check, fetch and extract on a miss,
// cache store. Panics inside an extractor are recovered here so a broken
// retailer cannot take down the batch.
func (s *Scheduler) runTask(t Task) (deals []deal.Deal) {
	defer func() {
		if r := recover(); r != nil {
			fault := errors.NewScraper(t.Retailer, fmt.Sprintf("extractor panic: %v", r), nil)
			s.log.Warn().
				Str("retailer", t.Retailer).
				Str("query", t.Query).
				Err(fault).
				Msg("Task failed")
			deals = nil
		}
	}()

	if cached, ok := s.cache.Get(t.Retailer, t.Query, t.Category); ok {
		s.log.Debug().
			Str("retailer", t.Retailer).
			Str("query", t.Query).
			Int("deals", len(cached)).
			Msg("Serving task from cache")
		return cached
	}

	body, err := s.fetch(t.Extractor.SearchURL(t.Query))
	if err != nil {
		s.log.Warn().
			Str("retailer", t.Retailer).
			Str("query", t.Query).
			Err(errors.NewNetwork(t.Retailer, "fetch failed", err)).
			Msg("Task yielded no deals")
		return nil
	}

	extracted, err := t.Extractor.Extract(body, t.Category, s.maxResults)
	if err != nil {
		s.log.Warn().
			Str("retailer", t.Retailer).
			Str("query", t.Query).
			Err(err).
			Msg("Task yielded no deals")
		return nil
	}

	s.cache.Set(t.Retailer, t.Query, t.Category, extracted)
	return extracted
}
