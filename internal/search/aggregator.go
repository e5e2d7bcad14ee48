package search

import (
	"strings"

	"techdeals/dealsearcher/internal/deal"
)

// Merge drains per-task results into one deduplicated collection.
// Duplicate listings surfaced by overlapping queries collapse on
// (retailer, lowercased product name); the first arrival wins. Output
// order is arrival order, so it is only deterministic when the scheduler
// runs sequentially.
func Merge(results <-chan TaskResult) []deal.Deal {
	seen := make(map[string]struct{})
	merged := make([]deal.Deal, 0)

	for result := range results {
		for _, d := range result.Deals {
			key := dedupKey(d)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, d)
		}
	}

	return merged
}

// dedupKey is the identity used to collapse duplicate listings
func dedupKey(d deal.Deal) string {
	return d.Retailer + "|" + strings.ToLower(d.ProductName)
}
