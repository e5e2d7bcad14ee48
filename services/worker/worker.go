package worker

import (
	"context"
	"time"

	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/services/publisher"
)

// DealSource runs one deal search; satisfied by search.Searcher
type DealSource interface {
	SearchDeals(ctx context.Context, categories []deal.ProductCategory, searchTerm string) []deal.Deal
}

// Worker repeatedly searches the configured categories and publishes
// every deal found, until its context is cancelled.
type Worker struct {
	ctx        context.Context
	source     DealSource
	publisher  publisher.Publisher
	categories []deal.ProductCategory
	searchTerm string
	interval   time.Duration
	log        *logger.Logger
}

// NewWorker creates a new watch worker
func NewWorker(
	ctx context.Context,
	source DealSource,
	pub publisher.Publisher,
	categories []deal.ProductCategory,
	searchTerm string,
	interval time.Duration,
) *Worker {
	return &Worker{
		ctx:        ctx,
		source:     source,
		publisher:  pub,
		categories: categories,
		searchTerm: searchTerm,
		interval:   interval,
		log:        logger.ForWorker(),
	}
}

// Start runs search cycles until the context is cancelled
func (w *Worker) Start() error {
	for {
		start := time.Now()
		w.searchAndPublish()
		w.log.Info().Dur("elapsed", time.Since(start)).Msg("Search cycle complete")

		select {
		case <-w.ctx.Done():
			return nil
		case <-time.After(w.interval):
		}
	}
}

// searchAndPublish runs one search cycle and publishes each deal record,
// then trims the streams
func (w *Worker) searchAndPublish() {
	deals := w.source.SearchDeals(w.ctx, w.categories, w.searchTerm)

	for _, d := range deals {
		if err := w.publisher.PublishDeal(d.Retailer, d.ToRecord()); err != nil {
			w.log.Error().Err(err).Str("retailer", d.Retailer).Msg("Failed to publish deal")
		}
	}

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}
}
