package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"techdeals/dealsearcher/config"
	"techdeals/dealsearcher/internal/deal"
)

func testConfig() SiteConfig {
	return SiteConfig{
		Retailer:        "Test Retailer",
		BaseURL:         "https://shop.example.com",
		SearchURLFormat: "https://shop.example.com/search?q=%s",
		Selectors: Selectors{
			ItemList:    "div.item",
			Title:       "a.title",
			Link:        "a.title",
			Price:       "span.price",
			WasPrice:    "span.was",
			Description: "p.desc",
		},
	}
}

func TestExtractListings(t *testing.T) {
	html := `<html><body>
		<div class="item">
			<a class="title" href="/p/ryzen-5900x">AMD Ryzen 9 5900X</a>
			<span class="price">$399.99</span>
			<span class="was">$549.99</span>
			<p class="desc">12-Core Desktop Processor</p>
		</div>
		<div class="item">
			<a class="title" href="https://shop.example.com/p/ps5">PlayStation 5</a>
			<span class="price">$449.99</span>
		</div>
	</body></html>`

	e := NewSiteExtractor(testConfig())
	deals, err := e.Extract(strings.NewReader(html), deal.CategoryCPU, 5)
	assert.NoError(t, err)
	assert.Len(t, deals, 2)

	assert.Equal(t, "AMD Ryzen 9 5900X", deals[0].ProductName)
	assert.Equal(t, 399.99, deals[0].SalePrice)
	assert.Equal(t, 549.99, deals[0].OriginalPrice)
	assert.Equal(t, 27.27, deals[0].DiscountPercentage)
	assert.Equal(t, "https://shop.example.com/p/ryzen-5900x", deals[0].URL)
	assert.Equal(t, "12-Core Desktop Processor", deals[0].Description)
	assert.Equal(t, "Test Retailer", deals[0].Retailer)

	// No "was" element: original equals sale, zero discount
	assert.Equal(t, 449.99, deals[1].OriginalPrice)
	assert.Equal(t, 0.0, deals[1].DiscountPercentage)
}

func TestExtractSkipsIncompleteBlocks(t *testing.T) {
	html := `<html><body>
		<div class="item">
			<span class="price">$99.99</span>
		</div>
		<div class="item">
			<a class="title" href="/p/no-price">Listing Without Price</a>
		</div>
		<div class="item">
			<a class="title" href="/p/bad-price">Listing With Junk Price</a>
			<span class="price">Call for price</span>
		</div>
		<div class="item">
			<a class="title" href="/p/ok">Valid Listing</a>
			<span class="price">$59.99</span>
		</div>
	</body></html>`

	e := NewSiteExtractor(testConfig())
	deals, err := e.Extract(strings.NewReader(html), deal.CategorySSD, 5)
	assert.NoError(t, err)
	assert.Len(t, deals, 1)
	assert.Equal(t, "Valid Listing", deals[0].ProductName)
}

func TestExtractIgnoresWasPriceNotAboveSale(t *testing.T) {
	html := `<html><body>
		<div class="item">
			<a class="title" href="/p/x">Listing</a>
			<span class="price">$100.00</span>
			<span class="was">$80.00</span>
		</div>
	</body></html>`

	e := NewSiteExtractor(testConfig())
	deals, err := e.Extract(strings.NewReader(html), deal.CategoryGPU, 5)
	assert.NoError(t, err)
	assert.Len(t, deals, 1)
	assert.Equal(t, 100.0, deals[0].OriginalPrice)
	assert.Equal(t, 0.0, deals[0].DiscountPercentage)
}

func TestExtractStopsAtLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 10; i++ {
		b.WriteString(`<div class="item"><a class="title" href="/p/x">Listing</a><span class="price">$10.00</span></div>`)
	}
	b.WriteString("</body></html>")

	e := NewSiteExtractor(testConfig())
	deals, err := e.Extract(strings.NewReader(b.String()), deal.CategoryHDD, 3)
	assert.NoError(t, err)
	assert.Len(t, deals, 3)
}

func TestExtractNonPositiveLimitYieldsNothing(t *testing.T) {
	html := `<html><body>
		<div class="item">
			<a class="title" href="/p/x">Listing</a>
			<span class="price">$10.00</span>
		</div>
	</body></html>`

	e := NewSiteExtractor(testConfig())

	deals, err := e.Extract(strings.NewReader(html), deal.CategoryHDD, 0)
	assert.NoError(t, err)
	assert.Empty(t, deals)

	deals, err = e.Extract(strings.NewReader(html), deal.CategoryHDD, -1)
	assert.NoError(t, err)
	assert.Empty(t, deals)
}

func TestExtractSkipsCartOnlyPrices(t *testing.T) {
	cfg := testConfig()
	cfg.SkipPriceTexts = []string{"see price in cart"}

	html := `<html><body>
		<div class="item">
			<a class="title" href="/p/hidden">Hidden Price Listing</a>
			<span class="price">See  Price in
			Cart</span>
		</div>
		<div class="item">
			<a class="title" href="/p/shown">Visible Price Listing</a>
			<span class="price">$79.99</span>
		</div>
	</body></html>`

	e := NewSiteExtractor(cfg)
	deals, err := e.Extract(strings.NewReader(html), deal.CategoryRAM, 5)
	assert.NoError(t, err)
	assert.Len(t, deals, 1)
	assert.Equal(t, "Visible Price Listing", deals[0].ProductName)
}

func TestSearchURLEscapesQuery(t *testing.T) {
	e := NewSiteExtractor(testConfig())
	assert.Equal(t, "https://shop.example.com/search?q=rtx+4070+graphics+card", e.SearchURL("rtx 4070 graphics card"))
}

func TestNewExtractorsReturnsRetailerSet(t *testing.T) {
	extractors := NewExtractors(config.LoadConfig())
	assert.Len(t, extractors, 3)

	retailers := make([]string, 0, len(extractors))
	for _, e := range extractors {
		retailers = append(retailers, e.Retailer())
		assert.Contains(t, e.SearchURL("test query"), "test+query")
	}
	assert.Equal(t, []string{"Best Buy", "Newegg", "Micro Center"}, retailers)
}
