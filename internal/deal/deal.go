package deal

import (
	"math"
	"time"
)

// Deal represents one discounted listing from one retailer. Deals are
// constructed once at scrape time and never mutated.
type Deal struct {
	ProductName        string          `json:"product_name"`
	Category           ProductCategory `json:"category"`
	OriginalPrice      float64         `json:"original_price"`
	SalePrice          float64         `json:"sale_price"`
	DiscountPercentage float64         `json:"discount_percentage"`
	Retailer           string          `json:"retailer"`
	URL                string          `json:"url,omitempty"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Record is the projection of a Deal used for rendering and serialization
type Record struct {
	ProductName        string  `json:"product_name"`
	Category           string  `json:"category"`
	OriginalPrice      float64 `json:"original_price"`
	SalePrice          float64 `json:"sale_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Retailer           string  `json:"retailer"`
	URL                string  `json:"url"`
	Description        string  `json:"description"`
	Timestamp          string  `json:"timestamp"`
}

// New constructs a Deal and computes its discount percentage. A listing
// with no "was" price should pass originalPrice == salePrice, which
// yields a zero discount.
func New(productName string, category ProductCategory, originalPrice, salePrice float64, retailer, url, description string) Deal {
	return Deal{
		ProductName:        productName,
		Category:           category,
		OriginalPrice:      round2(originalPrice),
		SalePrice:          round2(salePrice),
		DiscountPercentage: discount(originalPrice, salePrice),
		Retailer:           retailer,
		URL:                url,
		Description:        description,
		CreatedAt:          time.Now(),
	}
}

// discount returns the percentage saved, rounded to two decimal places.
// Non-positive original prices yield zero.
func discount(originalPrice, salePrice float64) float64 {
	if originalPrice <= 0 {
		return 0
	}
	return round2(((originalPrice - salePrice) / originalPrice) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToRecord converts the deal to its serializable projection
func (d Deal) ToRecord() Record {
	return Record{
		ProductName:        d.ProductName,
		Category:           d.Category.Label(),
		OriginalPrice:      d.OriginalPrice,
		SalePrice:          d.SalePrice,
		DiscountPercentage: d.DiscountPercentage,
		Retailer:           d.Retailer,
		URL:                d.URL,
		Description:        d.Description,
		Timestamp:          d.CreatedAt.Format(time.RFC3339),
	}
}
