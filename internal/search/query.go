package search

import (
	"strings"

	"techdeals/dealsearcher/internal/deal"
)

// BuildQuery maps a category and an optional free-text term to the
// retailer-facing search query. When the category's default phrase
// already appears in the term, the term is used verbatim to avoid
// queries like "rtx 4070 graphics card graphics card".
func BuildQuery(category deal.ProductCategory, term string) string {
	phrase := category.SearchTerm()
	term = strings.TrimSpace(term)
	if term == "" {
		return phrase
	}
	if strings.Contains(strings.ToLower(term), strings.ToLower(phrase)) {
		return term
	}
	return strings.TrimSpace(term + " " + phrase)
}

// normalizeQuery lowercases a query and collapses whitespace so that
// differently-spaced phrasings share one cache entry
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
