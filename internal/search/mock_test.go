package search

import (
	"io"
	"net/url"
	"strings"
	"sync"

	"techdeals/dealsearcher/internal/deal"
)

// fakeExtractor implements scraper.Extractor for testing
type fakeExtractor struct {
	retailer string
	deals    map[deal.ProductCategory][]deal.Deal
	panics   bool

	mu    sync.Mutex
	calls int
}

func (f *fakeExtractor) Retailer() string {
	return f.retailer
}

func (f *fakeExtractor) SearchURL(query string) string {
	return "https://example.com/search?q=" + url.QueryEscape(query)
}

func (f *fakeExtractor) Extract(_ io.Reader, category deal.ProductCategory, limit int) ([]deal.Deal, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.panics {
		panic("retailer markup changed")
	}

	deals := f.deals[category]
	if len(deals) > limit {
		deals = deals[:limit]
	}
	return deals, nil
}

func (f *fakeExtractor) extractCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// countingFetch returns a FetchFunc serving static markup and counting calls
func countingFetch(counter *int32, mu *sync.Mutex) FetchFunc {
	return func(string) (io.Reader, error) {
		mu.Lock()
		*counter++
		mu.Unlock()
		return strings.NewReader("<html></html>"), nil
	}
}

func fakeDeal(retailer, name string, category deal.ProductCategory, original, sale float64) deal.Deal {
	return deal.New(name, category, original, sale, retailer, "https://example.com/p/"+url.PathEscape(name), "")
}
