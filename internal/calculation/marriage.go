package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/estatecalc/esc/internal/domain"
)

// MarriageTier maps a half-open range of whole marriage years onto the
// applicable percentage of the net estate.
type MarriageTier struct {
	Min   int
	Max   int // exclusive; math.MaxInt for the open-ended top tier
	Pct   decimal.Decimal
	Label string
}

// MarriageTiers is the statutory percentage table, consulted in order with
// first match winning.
var MarriageTiers = []MarriageTier{
	{Min: 0, Max: 5, Pct: decimal.NewFromFloat(0.15), Label: "Less than 5 years"},
	{Min: 5, Max: 10, Pct: decimal.NewFromFloat(0.25), Label: "5 to less than 10 years"},
	{Min: 10, Max: 15, Pct: decimal.NewFromFloat(0.33), Label: "10 to less than 15 years"},
	{Min: 15, Max: math.MaxInt, Pct: decimal.NewFromFloat(0.50), Label: "15 years or more"},
}

// YearsMarried returns the whole completed years between the marriage and
// death dates. The year difference is decremented when death falls before
// the marriage anniversary in its year. Either date absent, or a negative
// span, yields zero.
func YearsMarried(marriage, death domain.Date) int {
	if marriage.IsZero() || death.IsZero() {
		return 0
	}
	years := death.Year() - marriage.Year()
	if death.Month() < marriage.Month() ||
		(death.Month() == marriage.Month() && death.Day() < marriage.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// ApplicablePercentage looks up the tier for a marriage duration. Durations
// outside every tier (impossible after clamping) fall back to the first.
func ApplicablePercentage(years int) decimal.Decimal {
	for _, t := range MarriageTiers {
		if years >= t.Min && years < t.Max {
			return t.Pct
		}
	}
	return MarriageTiers[0].Pct
}

// TierLabel returns the display label of the tier a duration falls in.
func TierLabel(years int) string {
	for _, t := range MarriageTiers {
		if years >= t.Min && years < t.Max {
			return t.Label
		}
	}
	return MarriageTiers[0].Label
}
