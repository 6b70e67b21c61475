// Package calculation implements the elective share computation engine: the
// rule arithmetic that turns a case snapshot (dates, assets, deductions,
// spousal receipts) into a share amount, a pro-rata apportionment and a set
// of advisory warnings.
//
// The engine is a pure, synchronous computation. It raises no errors:
// malformed numbers normalize to zero, missing dates yield a zero duration
// and no deadline, and rule violations surface only as warnings. The caller
// re-invokes it on every input change.
package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estatecalc/esc/internal/domain"
)

// Engine computes elective share results. Its only state is an injectable
// clock for deadline classification, so a single Engine is safe for
// concurrent use.
type Engine struct {
	// Now supplies the clock used to classify the filing deadline. Tests pin
	// it; nil means time.Now.
	Now func() time.Time
}

// NewEngine creates an engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

func (e *Engine) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Run calculates a case file, choosing quick-totals mode when the snapshot
// carries quick totals and the full per-asset pipeline otherwise.
func (e *Engine) Run(cf *domain.CaseFile) *domain.CalculationResult {
	if cf.Quick != nil {
		return e.CalculateQuick(cf.Basics, *cf.Quick)
	}
	return e.Calculate(cf)
}

// Calculate runs the full per-asset pipeline: valuation, deduction netting,
// spouse receipts, share calculation and apportionment.
func (e *Engine) Calculate(cf *domain.CaseFile) *domain.CalculationResult {
	res := e.newResult(cf.Basics)

	val := valueAssets(cf.Assets)
	res.TotalAssets = val.totalAssets

	res.PropertyPassing = val.propertyPassing
	for _, item := range cf.Spouse.Items {
		res.PropertyPassing = res.PropertyPassing.Add(ParseAmount(item.Value))
	}
	res.PropertyPassing = res.PropertyPassing.Add(ParseAmount(cf.Spouse.YearsAllowance))

	res.TotalClaims = ParseAmount(cf.Deductions.TotalClaims)
	res.AllowanceToOthers = ParseAmount(cf.Deductions.YearsAllowanceOthers)
	res.Taxes = ParseAmount(cf.Spouse.TaxesAttributable)
	res.ClaimsOnSpouse = ParseAmount(cf.Spouse.ClaimsAllocated)

	e.finishShare(res)
	res.Apportionment = val.apportion(res.ElectiveShare)
	return res
}

// CalculateQuick runs the simplified aggregate-totals path. Per-party
// attribution is unavailable without a per-asset breakdown, so the
// apportionment list is always empty.
func (e *Engine) CalculateQuick(basics domain.CaseBasics, q domain.QuickTotals) *domain.CalculationResult {
	res := e.newResult(basics)

	res.TotalAssets = ParseAmount(q.TotalAssets)
	res.TotalClaims = ParseAmount(q.TotalClaims)
	res.AllowanceToOthers = ParseAmount(q.YearsAllowanceOthers)
	res.PropertyPassing = ParseAmount(q.PropertyPassing)
	res.Taxes = ParseAmount(q.Taxes)
	res.ClaimsOnSpouse = ParseAmount(q.ClaimsOnSpouse)

	e.finishShare(res)
	return res
}

// newResult seeds a result with the duration, percentage and deadline
// classification common to both modes.
func (e *Engine) newResult(basics domain.CaseBasics) *domain.CalculationResult {
	res := &domain.CalculationResult{
		YearsMarried: YearsMarried(basics.MarriageDate, basics.DeathDate),
		Deadline:     FilingDeadline(basics.LettersDate),
	}
	res.ApplicablePct = ApplicablePercentage(res.YearsMarried)
	res.DeadlineStatus, res.DaysToDeadline = ClassifyDeadline(e.clock(), res.Deadline)
	return res
}

// finishShare completes the arithmetic shared by both modes. Intermediate
// values may be negative; the elective share itself is the single point
// clamped at zero.
func (e *Engine) finishShare(res *domain.CalculationResult) {
	res.NetAssets = res.TotalAssets.Sub(res.TotalClaims).Sub(res.AllowanceToOthers)
	res.PreliminaryShare = res.NetAssets.Mul(res.ApplicablePct)
	res.NetPropertyPassing = res.PropertyPassing.Sub(res.Taxes).Sub(res.ClaimsOnSpouse)

	share := res.PreliminaryShare.Sub(res.NetPropertyPassing)
	if share.IsNegative() {
		share = decimal.Zero
	}
	res.ElectiveShare = share
}
