package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techdeals/dealsearcher/internal/deal"
)

func resultsChannel(results ...TaskResult) <-chan TaskResult {
	ch := make(chan TaskResult, len(results))
	for _, r := range results {
		ch <- r
	}
	close(ch)
	return ch
}

func TestMergeDeduplicatesAcrossTasks(t *testing.T) {
	first := TaskResult{Deals: []deal.Deal{
		fakeDeal("Newegg", "AMD Ryzen 9 5900X", deal.CategoryCPU, 549.99, 399.99),
	}}
	// Same listing surfaced by a differently-phrased query, with a case change
	second := TaskResult{Deals: []deal.Deal{
		fakeDeal("Newegg", "amd ryzen 9 5900x", deal.CategoryCPU, 549.99, 389.99),
	}}

	merged := Merge(resultsChannel(first, second))
	assert.Len(t, merged, 1)
	// First arrival wins
	assert.Equal(t, 399.99, merged[0].SalePrice)
}

func TestMergeKeepsSameProductFromDifferentRetailers(t *testing.T) {
	first := TaskResult{Deals: []deal.Deal{
		fakeDeal("Newegg", "RTX 4070", deal.CategoryGPU, 599.99, 499.99),
	}}
	second := TaskResult{Deals: []deal.Deal{
		fakeDeal("Best Buy", "RTX 4070", deal.CategoryGPU, 599.99, 489.99),
	}}

	merged := Merge(resultsChannel(first, second))
	assert.Len(t, merged, 2)
}

func TestMergePreservesArrivalOrder(t *testing.T) {
	first := TaskResult{Deals: []deal.Deal{
		fakeDeal("Newegg", "A", deal.CategoryCPU, 100, 90),
		fakeDeal("Newegg", "B", deal.CategoryCPU, 100, 80),
	}}
	second := TaskResult{Deals: []deal.Deal{
		fakeDeal("Best Buy", "C", deal.CategoryGPU, 100, 70),
	}}

	merged := Merge(resultsChannel(first, second))
	assert.Len(t, merged, 3)
	assert.Equal(t, "A", merged[0].ProductName)
	assert.Equal(t, "B", merged[1].ProductName)
	assert.Equal(t, "C", merged[2].ProductName)
}

func TestMergeEmptyResults(t *testing.T) {
	merged := Merge(resultsChannel(TaskResult{}, TaskResult{}))
	assert.Empty(t, merged)
	assert.NotNil(t, merged)
}
