package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"techdeals/dealsearcher/helpers"
	"techdeals/dealsearcher/internal/deal"
	"techdeals/dealsearcher/logger"
	"techdeals/dealsearcher/pkg/errors"
)

// SiteExtractor is a selector-driven extractor; each retailer is one
// SiteConfig, not one hand-written parser.
type SiteExtractor struct {
	config SiteConfig
	log    *logger.Logger
}

// NewSiteExtractor creates an extractor from a retailer configuration
func NewSiteExtractor(config SiteConfig) *SiteExtractor {
	return &SiteExtractor{
		config: config,
		log:    logger.ForRetailer(config.Retailer),
	}
}

// Retailer returns the retailer name
func (e *SiteExtractor) Retailer() string {
	return e.config.Retailer
}

// SearchURL builds the retailer search URL for a query
func (e *SiteExtractor) SearchURL(query string) string {
	return fmt.Sprintf(e.config.SearchURLFormat, url.QueryEscape(query))
}

// Extract parses the page and returns at most limit deals. Listing blocks
// missing a title, link, or parsable price are skipped silently; that is
// expected noise from heterogeneous markup.
func (e *SiteExtractor) Extract(content io.Reader, category deal.ProductCategory, limit int) ([]deal.Deal, error) {
	if limit <= 0 {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return nil, errors.NewParsing(e.config.Retailer, "failed to parse page markup", err)
	}

	var deals []deal.Deal
	blocks := 0
	doc.Find(e.config.Selectors.ItemList).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		blocks++
		if d, ok := e.processItem(s, category); ok {
			deals = append(deals, d)
		}
		return len(deals) < limit
	})

	e.log.Debug().
		Int("blocks", blocks).
		Int("deals", len(deals)).
		Str("category", string(category)).
		Msg("Extracted listings")

	return deals, nil
}

// processItem extracts a single listing block into a Deal
func (e *SiteExtractor) processItem(s *goquery.Selection, category deal.ProductCategory) (deal.Deal, bool) {
	sel := e.config.Selectors

	titleSel := s.Find(sel.Title).First()
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		if titleAttr, exists := titleSel.Attr("title"); exists {
			title = strings.TrimSpace(titleAttr)
		}
	}
	if title == "" {
		return deal.Deal{}, false
	}

	link, exists := s.Find(sel.Link).First().Attr("href")
	link = strings.TrimSpace(link)
	if !exists || link == "" {
		return deal.Deal{}, false
	}
	link = e.resolveURL(link)

	priceText := strings.TrimSpace(s.Find(sel.Price).First().Text())
	if e.isPlaceholderPrice(priceText) {
		return deal.Deal{}, false
	}
	salePrice, ok := helpers.ParsePrice(priceText)
	if !ok {
		return deal.Deal{}, false
	}

	// A "was" price counts only when it is strictly above the sale price
	originalPrice := salePrice
	if sel.WasPrice != "" {
		wasText := s.Find(sel.WasPrice).First().Text()
		if wasPrice, ok := helpers.ParsePrice(wasText); ok && wasPrice > salePrice {
			originalPrice = wasPrice
		}
	}

	var description string
	if sel.Description != "" {
		description = strings.TrimSpace(s.Find(sel.Description).First().Text())
	}

	return deal.New(title, category, originalPrice, salePrice, e.config.Retailer, link, description), true
}

// isPlaceholderPrice reports whether the price text matches a configured
// cart-only placeholder for this retailer
func (e *SiteExtractor) isPlaceholderPrice(priceText string) bool {
	if len(e.config.SkipPriceTexts) == 0 {
		return false
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(priceText)), " ")
	for _, skip := range e.config.SkipPriceTexts {
		if strings.Contains(normalized, skip) {
			return true
		}
	}
	return false
}

// resolveURL resolves a listing link against the retailer's domain
func (e *SiteExtractor) resolveURL(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	if parsed.IsAbs() {
		return link
	}
	base, err := url.Parse(e.config.BaseURL)
	if err != nil {
		return link
	}
	return base.ResolveReference(parsed).String()
}
