package domain

import "github.com/google/uuid"

// AssetType identifies how an asset is owned or passes at death, which
// controls how much of it counts toward the augmented estate.
type AssetType string

const (
	AssetProbate          AssetType = "probate"
	AssetRevocableTrust   AssetType = "revocable_trust"
	AssetPODTOD           AssetType = "pod_tod"
	AssetJointTBE         AssetType = "joint_tbe"
	AssetJointJTWROS      AssetType = "joint_jtwros"
	AssetLifeInsurance    AssetType = "life_insurance"
	AssetRetirement       AssetType = "retirement"
	AssetAnnuity          AssetType = "annuity"
	AssetRetainedInterest AssetType = "retained_interest"
	AssetOneYearTransfer  AssetType = "one_year_transfer"
	AssetOther            AssetType = "other"
)

// AssetTypes lists every recognized asset type in display order.
var AssetTypes = []AssetType{
	AssetProbate,
	AssetRevocableTrust,
	AssetPODTOD,
	AssetJointTBE,
	AssetJointJTWROS,
	AssetLifeInsurance,
	AssetRetirement,
	AssetAnnuity,
	AssetRetainedInterest,
	AssetOneYearTransfer,
	AssetOther,
}

var assetTypeLabels = map[AssetType]string{
	AssetProbate:          "Probate Property",
	AssetRevocableTrust:   "Revocable Trust",
	AssetPODTOD:           "POD/TOD Account",
	AssetJointTBE:         "Joint Property (TBE w/ Spouse)",
	AssetJointJTWROS:      "Joint Property (JTWROS w/ Non-Spouse)",
	AssetLifeInsurance:    "Life Insurance",
	AssetRetirement:       "Retirement Account",
	AssetAnnuity:          "Annuity",
	AssetRetainedInterest: "Transfer w/ Retained Interest",
	AssetOneYearTransfer:  "Transfer Within 1 Year",
	AssetOther:            "Other Asset",
}

// Label returns the human-readable name for the asset type.
func (t AssetType) Label() string {
	if l, ok := assetTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is one of the recognized asset types.
func (t AssetType) Valid() bool {
	_, ok := assetTypeLabels[t]
	return ok
}

// ResponsibleType classifies the non-spouse party holding an asset and
// therefore liable for a slice of the elective share.
type ResponsibleType string

const (
	RespPersonalRep ResponsibleType = "personal_rep"
	RespTrustee     ResponsibleType = "trustee"
	RespBeneficiary ResponsibleType = "beneficiary"
	RespTransferee  ResponsibleType = "transferee"
)

// ResponsibleTypes lists every recognized responsible-party type.
var ResponsibleTypes = []ResponsibleType{
	RespPersonalRep,
	RespTrustee,
	RespBeneficiary,
	RespTransferee,
}

var responsibleTypeLabels = map[ResponsibleType]string{
	RespPersonalRep: "Personal Representative",
	RespTrustee:     "Trustee",
	RespBeneficiary: "Beneficiary",
	RespTransferee:  "Transferee",
}

// Label returns the human-readable name for the responsible-party type.
func (t ResponsibleType) Label() string {
	if l, ok := responsibleTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Asset is a single estate asset. Monetary and percentage fields are kept as
// the raw strings the user entered; the calculation engine normalizes them,
// so "$250,000" and "250000" value the same.
type Asset struct {
	ID                string          `yaml:"id,omitempty" json:"id,omitempty"`
	Type              AssetType       `yaml:"type" json:"type"`
	Description       string          `yaml:"description,omitempty" json:"description,omitempty"`
	Value             string          `yaml:"value" json:"value"`
	PassesToSpouse    bool            `yaml:"passes_to_spouse,omitempty" json:"passes_to_spouse,omitempty"`
	RespType          ResponsibleType `yaml:"responsible_type,omitempty" json:"responsible_type,omitempty"`
	RespName          string          `yaml:"responsible_name,omitempty" json:"responsible_name,omitempty"`
	DiscountPct       string          `yaml:"discount_pct,omitempty" json:"discount_pct,omitempty"`
	ContribPct        string          `yaml:"contribution_pct,omitempty" json:"contribution_pct,omitempty"`
	KnownPortion      bool            `yaml:"known_portion,omitempty" json:"known_portion,omitempty"`
	IncludablePortion string          `yaml:"includable_portion,omitempty" json:"includable_portion,omitempty"`
}

// EnsureID assigns a fresh identifier when the asset arrived without one.
func (a *Asset) EnsureID() {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
}

// PartyKey resolves the bucket key an asset's value is attributed to: the
// named party, falling back to the responsible-type label, defaulting to
// beneficiary.
func (a *Asset) PartyKey() (string, ResponsibleType) {
	pt := a.RespType
	if pt == "" {
		pt = RespBeneficiary
	}
	pn := a.RespName
	if pn == "" {
		pn = string(pt)
	}
	return pn, pt
}
