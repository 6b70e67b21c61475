package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
	}{
		{name: "Plain number", input: "250000", expected: decimal.NewFromInt(250000)},
		{name: "Currency formatting", input: "$1,234.56", expected: decimal.NewFromFloat(1234.56)},
		{name: "Leading and trailing spaces", input: "  42.50  ", expected: decimal.NewFromFloat(42.5)},
		{name: "Negative value", input: "-500", expected: decimal.NewFromInt(-500)},
		{name: "Negative with currency symbol", input: "-$500.00", expected: decimal.NewFromInt(-500)},
		{name: "Empty input", input: "", expected: decimal.Zero},
		{name: "Pure garbage", input: "abc", expected: decimal.Zero},
		{name: "Literal NaN", input: "NaN", expected: decimal.Zero},
		{name: "Lone minus sign", input: "-", expected: decimal.Zero},
		{name: "Lone decimal point", input: ".", expected: decimal.Zero},
		{name: "Multiple decimal points", input: "1.2.3", expected: decimal.Zero},
		{name: "Digits mixed with words", input: "about 100 dollars", expected: decimal.NewFromInt(100)},
		{name: "Zero", input: "0", expected: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, got.Equal(tt.expected),
				"ParseAmount(%q): expected %s, got %s", tt.input, tt.expected, got)
		})
	}
}

func TestParseAmountNeverPanics(t *testing.T) {
	// A grab bag of hostile inputs; the normalizer is a total function.
	inputs := []string{"--", "..", "-.-", "1-2", "$-", "∞", "1e9", "0x10"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ParseAmount(in) }, "input %q", in)
	}
}
