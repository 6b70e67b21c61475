package calculation

import (
	"fmt"
	"time"

	"github.com/estatecalc/esc/internal/domain"
)

// warningCheck is one rule in the fixed advisory battery. Checks run in a
// declared order against the raw inputs and the computed deadline; their
// output never feeds back into the arithmetic.
type warningCheck func(cf *domain.CaseFile, deadline domain.Date, now time.Time) *domain.Warning

// warningChecks is the ordered rule table. Every triggered check appears in
// the output, in this order.
var warningChecks = []warningCheck{
	checkOneYearTransfer,
	checkJTWROSContribution,
	checkDomicile,
	checkDeadlineStatus,
	checkProceduralCutover,
}

// Warnings evaluates the advisory rule battery for a case snapshot.
func (e *Engine) Warnings(cf *domain.CaseFile) []domain.Warning {
	deadline := FilingDeadline(cf.Basics.LettersDate)
	now := e.clock()
	var out []domain.Warning
	for _, check := range warningChecks {
		if w := check(cf, deadline, now); w != nil {
			out = append(out, *w)
		}
	}
	return out
}

func checkOneYearTransfer(cf *domain.CaseFile, _ domain.Date, _ time.Time) *domain.Warning {
	for _, a := range cf.Assets {
		if a.Type == domain.AssetOneYearTransfer {
			return &domain.Warning{
				Severity: domain.SeverityWarning,
				Message:  "Transfer within 1 year detected. May be includable; consult counsel.",
			}
		}
	}
	return nil
}

func checkJTWROSContribution(cf *domain.CaseFile, _ domain.Date, _ time.Time) *domain.Warning {
	for _, a := range cf.Assets {
		if a.Type == domain.AssetJointJTWROS && !a.KnownPortion && a.ContribPct == "" {
			return &domain.Warning{
				Severity: domain.SeverityWarning,
				Message:  "Joint property with non-spouse missing contribution info.",
			}
		}
	}
	return nil
}

func checkDomicile(cf *domain.CaseFile, _ domain.Date, _ time.Time) *domain.Warning {
	if !cf.Basics.NCDomiciled {
		return &domain.Warning{
			Severity: domain.SeverityError,
			Message:  "NC elective share applies only to NC-domiciled decedents.",
		}
	}
	return nil
}

func checkDeadlineStatus(_ *domain.CaseFile, deadline domain.Date, now time.Time) *domain.Warning {
	status, days := ClassifyDeadline(now, deadline)
	switch status {
	case domain.DeadlinePassed:
		return &domain.Warning{
			Severity: domain.SeverityError,
			Message:  "The 6-month deadline has passed.",
		}
	case domain.DeadlineUrgent:
		return &domain.Warning{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Only %d days until filing deadline.", days),
		}
	}
	return nil
}

func checkProceduralCutover(cf *domain.CaseFile, _ domain.Date, _ time.Time) *domain.Warning {
	if cf.Basics.ClaimAfterCutover {
		return &domain.Warning{
			Severity: domain.SeverityInfo,
			Message:  "2026 procedural rules apply: verified petition required, Rule 4 service, late service does not bar the claim.",
		}
	}
	return nil
}
