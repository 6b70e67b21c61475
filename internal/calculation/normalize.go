package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts free-form numeric text into a decimal. Currency
// symbols, thousands separators and stray characters are stripped; empty or
// unparseable input yields zero. This is a total function and never errors,
// so a half-filled case file still produces a result.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
