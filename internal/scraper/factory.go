package scraper

import (
	"techdeals/dealsearcher/config"
)

// NewExtractors creates the fixed retailer extractor set. Adding a
// retailer means adding one SiteConfig here.
func NewExtractors(cfg *config.Config) []Extractor {
	configurations := []SiteConfig{
		{
			// Best Buy search results
			Retailer:        "Best Buy",
			BaseURL:         "https://www.bestbuy.com",
			SearchURLFormat: cfg.BestBuySearchURL,
			Selectors: Selectors{
				ItemList: "li.sku-item",
				Title:    "h4.sku-title a",
				Link:     "h4.sku-title a",
				Price:    "div.priceView-customer-price span[aria-hidden='true']",
				WasPrice: "div.pricing-price__regular-price",
			},
		},
		{
			// Newegg search results. Newegg hides some prices behind the
			// cart, rendering a placeholder where the price would be.
			Retailer:        "Newegg",
			BaseURL:         "https://www.newegg.com",
			SearchURLFormat: cfg.NeweggSearchURL,
			Selectors: Selectors{
				ItemList:    "div.item-cell",
				Title:       "a.item-title",
				Link:        "a.item-title",
				Price:       "li.price-current",
				WasPrice:    "li.price-was",
				Description: "ul.item-features",
			},
			SkipPriceTexts: []string{
				"see price in cart",
				"price in cart",
			},
		},
		{
			// Micro Center search results
			Retailer:        "Micro Center",
			BaseURL:         "https://www.microcenter.com",
			SearchURLFormat: cfg.MicroCenterSearchURL,
			Selectors: Selectors{
				ItemList:    "li.product_wrapper",
				Title:       "div.pDescription h2 a",
				Link:        "div.pDescription h2 a",
				Price:       "div.price_wrapper span[itemprop='price']",
				WasPrice:    "div.price_wrapper span.standard-price",
				Description: "p.normal",
			},
		},
	}

	extractors := make([]Extractor, 0, len(configurations))
	for _, config := range configurations {
		extractors = append(extractors, NewSiteExtractor(config))
	}

	return extractors
}
