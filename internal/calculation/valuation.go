package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/estatecalc/esc/internal/domain"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// IncludableValue computes how much of a single asset counts toward the
// augmented estate. It is a pure function of that asset's own fields:
//
//   - TBE property with the spouse: exactly half the raw value; any discount
//     field is ignored.
//   - JTWROS with a non-spouse: the explicit includable portion when the
//     caller marked it known (raw value and discount ignored), otherwise the
//     raw value scaled by the decedent's contribution percentage, treated as
//     100% when unset or zero.
//   - Every other type: the raw value, reduced by the discount percentage
//     when one is given.
func IncludableValue(a domain.Asset) decimal.Decimal {
	raw := ParseAmount(a.Value)

	switch a.Type {
	case domain.AssetJointTBE:
		return raw.Div(two)
	case domain.AssetJointJTWROS:
		if a.KnownPortion {
			return ParseAmount(a.IncludablePortion)
		}
		contrib := ParseAmount(a.ContribPct)
		if contrib.IsZero() {
			contrib = hundred
		}
		return raw.Mul(contrib).Div(hundred)
	}

	if a.DiscountPct != "" {
		disc := ParseAmount(a.DiscountPct)
		raw = raw.Mul(decimal.NewFromInt(1).Sub(disc.Div(hundred)))
	}
	return raw
}

// partyBucket accumulates the includable value attributed to one responsible
// party. Buckets live for a single calculation.
type partyBucket struct {
	name  string
	ptype domain.ResponsibleType
	value decimal.Decimal
}

// valuation is the aggregate of a pass over the asset list: the augmented
// estate total, the portion passing to the spouse, and the ordered
// responsible-party buckets for apportionment.
type valuation struct {
	totalAssets     decimal.Decimal
	propertyPassing decimal.Decimal

	order   []string
	buckets map[string]*partyBucket
}

// valueAssets runs per-asset valuation over the whole list, routing each
// asset's includable value either to the spouse or to a responsible-party
// bucket keyed by party name. First-seen bucket order is preserved.
func valueAssets(assets []domain.Asset) *valuation {
	v := &valuation{buckets: make(map[string]*partyBucket)}
	for _, a := range assets {
		iv := IncludableValue(a)
		v.totalAssets = v.totalAssets.Add(iv)
		if a.PassesToSpouse {
			v.propertyPassing = v.propertyPassing.Add(iv)
			continue
		}
		name, ptype := a.PartyKey()
		b, ok := v.buckets[name]
		if !ok {
			b = &partyBucket{name: name, ptype: ptype}
			v.buckets[name] = b
			v.order = append(v.order, name)
		}
		b.value = b.value.Add(iv)
	}
	return v
}

// nonSpouseTotal sums every bucket's attributed value.
func (v *valuation) nonSpouseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, name := range v.order {
		total = total.Add(v.buckets[name].value)
	}
	return total
}

// apportion splits the final elective share across the buckets pro rata, in
// first-seen order. A non-positive non-spouse total yields no entries at all,
// which also keeps the division safe.
func (v *valuation) apportion(share decimal.Decimal) []domain.ApportionmentEntry {
	total := v.nonSpouseTotal()
	if !total.IsPositive() {
		return nil
	}
	entries := make([]domain.ApportionmentEntry, 0, len(v.order))
	for _, name := range v.order {
		b := v.buckets[name]
		fraction := b.value.Div(total)
		entries = append(entries, domain.ApportionmentEntry{
			Name:  b.name,
			Type:  b.ptype,
			Value: b.value,
			Share: fraction.Mul(share),
			Pct:   fraction.Mul(hundred),
		})
	}
	return entries
}
