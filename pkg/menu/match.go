package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MatchName reports whether query is a case-insensitive prefix of name+suffix.
// An empty query matches every name.
func MatchName(name, suffix, query string) bool {
	return strings.HasPrefix(strings.ToLower(name+suffix), strings.ToLower(query))
}

// FormatPrice renders an amount as dollars with two decimals.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// Sum adds up the prices of the given items.
func Sum[T Priced](items []T) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price())
	}
	return total
}
