package tui

import (
	"github.com/estatecalc/esc/internal/domain"
)

var assetTypeCycle = []string{
	string(domain.AssetProbate),
	string(domain.AssetRevocableTrust),
	string(domain.AssetPODTOD),
	string(domain.AssetJointTBE),
	string(domain.AssetJointJTWROS),
	string(domain.AssetLifeInsurance),
	string(domain.AssetRetirement),
	string(domain.AssetAnnuity),
	string(domain.AssetRetainedInterest),
	string(domain.AssetOneYearTransfer),
	string(domain.AssetOther),
}

var respTypeCycle = []string{
	string(domain.RespPersonalRep),
	string(domain.RespTrustee),
	string(domain.RespBeneficiary),
	string(domain.RespTransferee),
}

func dateField(label string, d *domain.Date) field {
	return field{
		label: label,
		kind:  fieldText,
		get: func() string {
			if d.IsZero() {
				return ""
			}
			return d.Format("2006-01-02")
		},
		set: func(s string) { *d = domain.ParseDate(s) },
	}
}

func textField(label string, s *string) field {
	return field{
		label: label,
		kind:  fieldText,
		get:   func() string { return *s },
		set:   func(v string) { *s = v },
	}
}

func toggleField(label string, b *bool) field {
	return field{
		label: label,
		kind:  fieldToggle,
		get: func() string {
			if *b {
				return "yes"
			}
			return "no"
		},
		set: func(string) { *b = !*b },
	}
}

// fields builds the editable rows for the current page. The list is
// rebuilt on every update, so conditional rows (joint-property details,
// responsible party) appear and disappear as the case changes.
func (m Model) fields() []field {
	cf := m.caseFile
	switch m.step {
	case stepBasics:
		return []field{
			dateField("Date of marriage", &cf.Basics.MarriageDate),
			dateField("Date of death", &cf.Basics.DeathDate),
			dateField("Letters issued", &cf.Basics.LettersDate),
			toggleField("Decedent domiciled in NC", &cf.Basics.NCDomiciled),
			toggleField("Claim filed under 2026 rules", &cf.Basics.ClaimAfterCutover),
		}
	case stepAssets:
		var fs []field
		for i := range cf.Assets {
			fs = append(fs, assetFields(&cf.Assets[i])...)
		}
		return fs
	case stepSpouse:
		fs := []field{
			textField("Year's allowance to spouse", &cf.Spouse.YearsAllowance),
			textField("Estate taxes attributable", &cf.Spouse.TaxesAttributable),
			textField("Claims allocated to spouse", &cf.Spouse.ClaimsAllocated),
		}
		for i := range cf.Spouse.Items {
			item := &cf.Spouse.Items[i]
			fs = append(fs,
				textField("Property received: description", &item.Description),
				textField("Property received: value", &item.Value),
			)
		}
		return fs
	case stepDeductions:
		return []field{
			textField("Enforceable claims against estate", &cf.Deductions.TotalClaims),
			textField("Year's allowances to others", &cf.Deductions.YearsAllowanceOthers),
		}
	default:
		return nil
	}
}

func assetFields(a *domain.Asset) []field {
	fs := []field{
		{
			label:   "Asset type",
			kind:    fieldCycle,
			get:     func() string { return string(a.Type) },
			set:     func(v string) { a.Type = domain.AssetType(v) },
			options: assetTypeCycle,
		},
		textField("Description", &a.Description),
		textField("Value", &a.Value),
		toggleField("Passes to spouse", &a.PassesToSpouse),
	}
	if !a.PassesToSpouse {
		fs = append(fs,
			textField("Responsible party", &a.RespName),
			field{
				label:   "Responsible role",
				kind:    fieldCycle,
				get:     func() string { return string(a.RespType) },
				set:     func(v string) { a.RespType = domain.ResponsibleType(v) },
				options: respTypeCycle,
			},
		)
	}
	switch a.Type {
	case domain.AssetJointJTWROS:
		fs = append(fs, toggleField("Includable portion known", &a.KnownPortion))
		if a.KnownPortion {
			fs = append(fs, textField("Includable portion", &a.IncludablePortion))
		} else {
			fs = append(fs, textField("Decedent contribution %", &a.ContribPct))
		}
	case domain.AssetJointTBE:
		// Half includable by statute, nothing further to ask.
	default:
		fs = append(fs, textField("Valuation discount %", &a.DiscountPct))
	}
	return fs
}

// fieldsPerAsset reports how many rows the given asset contributes, so the
// asset page can map the cursor back to an asset for deletion.
func fieldsPerAsset(a *domain.Asset) int {
	return len(assetFields(a))
}

// assetAt maps a cursor position on the assets page to an asset index.
// Returns -1 when there are no assets.
func (m Model) assetAt(cursor int) int {
	off := 0
	for i := range m.caseFile.Assets {
		off += fieldsPerAsset(&m.caseFile.Assets[i])
		if cursor < off {
			return i
		}
	}
	return len(m.caseFile.Assets) - 1
}

// spouseItemAt maps a cursor position on the spouse page to a receipt item
// index, or -1 when the cursor sits on one of the three fixed amounts.
func (m Model) spouseItemAt(cursor int) int {
	const fixed = 3
	if cursor < fixed {
		return -1
	}
	idx := (cursor - fixed) / 2
	if idx >= len(m.caseFile.Spouse.Items) {
		return -1
	}
	return idx
}
