package helpers

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches digits with optional thousands separators and an optional
// two-digit fraction, e.g. "1,299.99", "499", "19.99". The separator
// branch requires at least one comma group; alternation is
// leftmost-first, so a branch matching any leading run of digits would
// otherwise truncate unseparated prices like "1349.99".
var priceRegex = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?`)

// ParsePrice extracts the first price-like number from free-form retailer
// text. It returns false for empty input or when no number is present.
func ParsePrice(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	match := priceRegex.FindString(text)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
