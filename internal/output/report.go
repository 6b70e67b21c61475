// Package output renders calculation results for the CLI: a console
// breakdown mirroring the statutory worksheet, plus JSON and CSV for
// scripting.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/estatecalc/esc/internal/calculation"
	"github.com/estatecalc/esc/internal/domain"
)

// Report bundles a calculation result with the advisory warnings produced
// from the same inputs.
type Report struct {
	Result   *domain.CalculationResult `json:"result"`
	Warnings []domain.Warning          `json:"warnings"`
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

// NewFormatter resolves a format name to a formatter; unknown names get the
// console formatter.
func NewFormatter(name string) Formatter {
	switch name {
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return ConsoleFormatter{}
	}
}

// ConsoleFormatter renders the worksheet-style breakdown: netting lines, the
// share, who pays, deadline and warnings.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(r *Report) ([]byte, error) {
	res := r.Result
	var sb strings.Builder

	sb.WriteString("ELECTIVE SHARE CALCULATION\n")
	sb.WriteString(strings.Repeat("=", 62) + "\n")
	fmt.Fprintf(&sb, "Marriage Duration:   %d years (%s)\n",
		res.YearsMarried, calculation.TierLabel(res.YearsMarried))
	fmt.Fprintf(&sb, "Applicable %%:        %s\n", formatPct(res.ApplicablePct))
	if !res.Deadline.IsZero() {
		fmt.Fprintf(&sb, "Filing Deadline:     %s (%s)\n",
			res.Deadline.Format("January 2, 2006"), deadlineNote(res))
	}
	sb.WriteString("\n")

	if len(r.Warnings) > 0 {
		sb.WriteString("WARNINGS\n")
		sb.WriteString(strings.Repeat("-", 62) + "\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "[%s] %s\n", w.Severity, w.Message)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("CALCULATION BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 62) + "\n")
	line(&sb, "Total Assets", FormatCurrency(res.TotalAssets))
	line(&sb, "Less: Claims", paren(res.TotalClaims))
	line(&sb, "Less: Year's Allowance to Others", paren(res.AllowanceToOthers))
	line(&sb, "Total Net Assets", FormatCurrency(res.NetAssets))
	line(&sb, fmt.Sprintf("Applicable %% (%d years)", res.YearsMarried), "x "+formatPct(res.ApplicablePct))
	line(&sb, "Preliminary Share", FormatCurrency(res.PreliminaryShare))
	line(&sb, "Property Passing to Spouse", FormatCurrency(res.PropertyPassing))
	line(&sb, "Less: Taxes Attributable", paren(res.Taxes))
	line(&sb, "Less: Claims Allocated", paren(res.ClaimsOnSpouse))
	line(&sb, "Net Property Passing", FormatCurrency(res.NetPropertyPassing))
	line(&sb, "ELECTIVE SHARE", FormatCurrency(res.ElectiveShare))

	if res.ElectiveShare.IsZero() {
		sb.WriteString("\nSpouse's receipts meet or exceed the elective share.\n")
	}

	if len(res.Apportionment) > 0 && res.ElectiveShare.IsPositive() {
		sb.WriteString("\nWHO PAYS (APPORTIONMENT)\n")
		sb.WriteString(strings.Repeat("-", 62) + "\n")
		for _, e := range res.Apportionment {
			fmt.Fprintf(&sb, "%-34s %14s  %s%% of liability\n",
				fmt.Sprintf("%s (%s)", e.Name, e.Type.Label()),
				FormatCurrency(e.Share), e.Pct.StringFixed(1))
		}
	}

	return []byte(sb.String()), nil
}

// line writes one label/amount worksheet row.
func line(sb *strings.Builder, label, amount string) {
	fmt.Fprintf(sb, "%-40s %20s\n", label, amount)
}

// paren renders a deduction amount in accounting parentheses.
func paren(d decimal.Decimal) string {
	return "(" + FormatCurrency(d) + ")"
}

// formatPct renders a fractional percentage (0.50 -> "50%").
func formatPct(frac decimal.Decimal) string {
	return FormatPercentage(frac.Mul(decimal.NewFromInt(100)))
}

func deadlineNote(res *domain.CalculationResult) string {
	switch res.DeadlineStatus {
	case domain.DeadlinePassed:
		return "deadline has passed"
	case domain.DeadlineUrgent:
		return fmt.Sprintf("urgent, %d days remaining", res.DaysToDeadline)
	default:
		return fmt.Sprintf("%d days remaining", res.DaysToDeadline)
	}
}

// FormatCurrency formats a decimal as a dollar amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(0) + "%"
}
