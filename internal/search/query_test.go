package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techdeals/dealsearcher/internal/deal"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		category deal.ProductCategory
		term     string
		want     string
	}{
		{"no term uses category phrase", deal.CategoryCPU, "", "processor"},
		{"term already containing phrase is verbatim", deal.CategoryCPU, "AMD Ryzen processor", "AMD Ryzen processor"},
		{"phrase match is case-insensitive", deal.CategoryGPU, "RTX 4070 Graphics Card", "RTX 4070 Graphics Card"},
		{"term without phrase gets it appended", deal.CategoryGPU, "rtx 4070", "rtx 4070 graphics card"},
		{"whitespace-only term falls back to phrase", deal.CategoryTelevision, "   ", "4k tv"},
		{"term is trimmed before concatenation", deal.CategorySSD, "  samsung 990 pro  ", "samsung 990 pro ssd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.category, tt.term))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "rtx 4070 graphics card", normalizeQuery("RTX  4070\tGraphics   Card"))
	assert.Equal(t, normalizeQuery("4K TV"), normalizeQuery("4k  tv"))
}
