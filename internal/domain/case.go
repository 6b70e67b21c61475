package domain

import "github.com/google/uuid"

// CaseBasics holds the key dates and flags for an elective share claim.
// Supplied wholesale by the caller; never mutated by the engine.
type CaseBasics struct {
	DeathDate         Date `yaml:"death_date" json:"death_date"`
	MarriageDate      Date `yaml:"marriage_date" json:"marriage_date"`
	NCDomiciled       bool `yaml:"nc_domiciled" json:"nc_domiciled"`
	LettersDate       Date `yaml:"letters_date" json:"letters_date"`
	ClaimAfterCutover bool `yaml:"claim_after_2026,omitempty" json:"claim_after_2026,omitempty"`
}

// ReceiptItem is a single piece of property the surviving spouse received
// outside the asset list (an equitable distribution award, for example).
type ReceiptItem struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Value       string `yaml:"value" json:"value"`
}

// EnsureID assigns a fresh identifier when the item arrived without one.
func (i *ReceiptItem) EnsureID() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
}

// SpouseReceipts is everything the surviving spouse received, plus the two
// reductions applied only to the spouse's side of the ledger.
type SpouseReceipts struct {
	Items             []ReceiptItem `yaml:"items,omitempty" json:"items,omitempty"`
	YearsAllowance    string        `yaml:"years_allowance,omitempty" json:"years_allowance,omitempty"`
	TaxesAttributable string        `yaml:"taxes_attributable,omitempty" json:"taxes_attributable,omitempty"`
	ClaimsAllocated   string        `yaml:"claims_allocated,omitempty" json:"claims_allocated,omitempty"`
}

// Deductions nets the estate down before the applicable percentage applies.
type Deductions struct {
	TotalClaims          string `yaml:"total_claims,omitempty" json:"total_claims,omitempty"`
	YearsAllowanceOthers string `yaml:"years_allowance_others,omitempty" json:"years_allowance_others,omitempty"`
}

// QuickTotals is the flat alternative input for quick-totals mode, used when
// a per-asset breakdown is unavailable.
type QuickTotals struct {
	TotalAssets          string `yaml:"total_assets,omitempty" json:"total_assets,omitempty"`
	TotalClaims          string `yaml:"total_claims,omitempty" json:"total_claims,omitempty"`
	YearsAllowanceOthers string `yaml:"years_allowance_others,omitempty" json:"years_allowance_others,omitempty"`
	PropertyPassing      string `yaml:"property_passing,omitempty" json:"property_passing,omitempty"`
	Taxes                string `yaml:"taxes,omitempty" json:"taxes,omitempty"`
	ClaimsOnSpouse       string `yaml:"claims_on_spouse,omitempty" json:"claims_on_spouse,omitempty"`
}

// CaseFile is the complete input snapshot for one calculation. It is also the
// YAML document the CLI loads and saves; the engine itself never touches disk.
type CaseFile struct {
	Basics     CaseBasics     `yaml:"basics" json:"basics"`
	Assets     []Asset        `yaml:"assets,omitempty" json:"assets,omitempty"`
	Spouse     SpouseReceipts `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	Deductions Deductions     `yaml:"deductions,omitempty" json:"deductions,omitempty"`
	Quick      *QuickTotals   `yaml:"quick,omitempty" json:"quick,omitempty"`
}
