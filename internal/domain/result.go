package domain

import "github.com/shopspring/decimal"

// DeadlineStatus classifies the six-month filing deadline relative to the
// clock the engine was given.
type DeadlineStatus string

const (
	DeadlineNone   DeadlineStatus = ""
	DeadlineOK     DeadlineStatus = "ok"
	DeadlineUrgent DeadlineStatus = "urgent"
	DeadlinePassed DeadlineStatus = "passed"
)

// Severity grades an advisory warning.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Warning is a single advisory produced by the rule checks. Warnings never
// stop a calculation; whether an error-severity warning blocks anything is
// the caller's decision.
type Warning struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ApportionmentEntry is one responsible party's slice of the elective share
// liability, pro rata to the value attributed to that party.
type ApportionmentEntry struct {
	Name  string          `json:"name"`
	Type  ResponsibleType `json:"type"`
	Value decimal.Decimal `json:"value"`
	Share decimal.Decimal `json:"share"`
	Pct   decimal.Decimal `json:"pct"`
}

// CalculationResult is the full output of one elective share calculation.
// Intermediate figures may be negative; only ElectiveShare is clamped.
type CalculationResult struct {
	YearsMarried   int             `json:"years_married"`
	ApplicablePct  decimal.Decimal `json:"applicable_pct"`
	Deadline       Date            `json:"deadline"`
	DeadlineStatus DeadlineStatus  `json:"deadline_status,omitempty"`
	DaysToDeadline int             `json:"days_to_deadline,omitempty"`

	TotalAssets       decimal.Decimal `json:"total_assets"`
	TotalClaims       decimal.Decimal `json:"total_claims"`
	AllowanceToOthers decimal.Decimal `json:"allowance_to_others"`
	NetAssets         decimal.Decimal `json:"net_assets"`
	PreliminaryShare  decimal.Decimal `json:"preliminary_share"`

	PropertyPassing    decimal.Decimal `json:"property_passing"`
	Taxes              decimal.Decimal `json:"taxes"`
	ClaimsOnSpouse     decimal.Decimal `json:"claims_on_spouse"`
	NetPropertyPassing decimal.Decimal `json:"net_property_passing"`

	ElectiveShare decimal.Decimal      `json:"elective_share"`
	Apportionment []ApportionmentEntry `json:"apportionment"`
}
