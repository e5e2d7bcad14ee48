package scraper

import (
	"io"

	"techdeals/dealsearcher/internal/deal"
)

// Extractor is the contract every retailer implementation satisfies
type Extractor interface {
	// Extract parses fetched page markup and returns up to limit deals
	Extract(content io.Reader, category deal.ProductCategory, limit int) ([]deal.Deal, error)

	// Retailer returns the retailer name for logging and dedup identity
	Retailer() string

	// SearchURL builds the retailer-facing URL for a search query
	SearchURL(query string) string
}

// Selectors contains CSS selectors for the elements of one listing block
type Selectors struct {
	ItemList    string
	Title       string
	Link        string
	Price       string
	WasPrice    string
	Description string
}

// SiteConfig contains the configuration for one retailer extractor
type SiteConfig struct {
	Retailer        string
	BaseURL         string
	SearchURLFormat string
	Selectors       Selectors

	// SkipPriceTexts lists normalized price texts that mark a listing as
	// having no visible price (e.g. cart-only pricing); such blocks are
	// discarded.
	SkipPriceTexts []string
}
