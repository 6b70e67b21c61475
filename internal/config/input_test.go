package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatecalc/esc/internal/domain"
)

func writeCaseFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeCaseFile(t, `
basics:
  death_date: "2024-06-01"
  marriage_date: "2009-06-01"
  nc_domiciled: true
  letters_date: "2024-07-15"
assets:
  - type: probate
    description: Checking account
    value: "$200,000"
    responsible_type: beneficiary
    responsible_name: Child A
  - type: joint_tbe
    value: "100000"
    passes_to_spouse: true
spouse:
  items:
    - description: ED award
      value: "30000"
  years_allowance: "60000"
deductions:
  total_claims: "20,000.00"
`)

	cf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2024, cf.Basics.DeathDate.Year())
	assert.Equal(t, time.June, cf.Basics.DeathDate.Month())
	assert.True(t, cf.Basics.NCDomiciled)

	require.Len(t, cf.Assets, 2)
	assert.Equal(t, domain.AssetProbate, cf.Assets[0].Type)
	assert.Equal(t, "$200,000", cf.Assets[0].Value, "raw value strings load verbatim")
	assert.NotEmpty(t, cf.Assets[0].ID, "assets get identifiers on load")
	assert.True(t, cf.Assets[1].PassesToSpouse)

	require.Len(t, cf.Spouse.Items, 1)
	assert.NotEmpty(t, cf.Spouse.Items[0].ID)
	assert.Equal(t, "20,000.00", cf.Deductions.TotalClaims)
	assert.Nil(t, cf.Quick)
}

func TestLoadFromFileMalformedDateIsAbsent(t *testing.T) {
	path := writeCaseFile(t, `
basics:
  death_date: "sometime last spring"
  marriage_date: ""
  nc_domiciled: true
`)

	cf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err, "malformed dates must not fail the load")
	assert.True(t, cf.Basics.DeathDate.IsZero())
	assert.True(t, cf.Basics.MarriageDate.IsZero())
}

func TestLoadFromFileUnknownAssetType(t *testing.T) {
	path := writeCaseFile(t, `
basics:
  nc_domiciled: true
assets:
  - type: timeshare
    value: "5000"
`)

	cf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cf.Assets, 1)
	assert.Equal(t, domain.AssetOther, cf.Assets[0].Type,
		"unrecognized asset types degrade to other")
}

func TestLoadFromFileQuickTotals(t *testing.T) {
	path := writeCaseFile(t, `
basics:
  nc_domiciled: true
quick:
  total_assets: "500000"
  total_claims: "40000"
  property_passing: "80000"
`)

	cf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, cf.Quick)
	assert.Equal(t, "500000", cf.Quick.TotalAssets)
	assert.Equal(t, "80000", cf.Quick.PropertyPassing)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	parser := NewInputParser()
	cf := &domain.CaseFile{
		Basics: domain.CaseBasics{
			DeathDate:    domain.NewDate(2024, time.June, 1),
			MarriageDate: domain.NewDate(2009, time.June, 1),
			NCDomiciled:  true,
			LettersDate:  domain.NewDate(2024, time.July, 15),
		},
		Assets: []domain.Asset{
			{
				ID: "a1", Type: domain.AssetJointJTWROS, Value: "80000",
				ContribPct: "25", RespType: domain.RespTransferee, RespName: "Nephew",
			},
		},
		Spouse: domain.SpouseReceipts{
			Items:          []domain.ReceiptItem{{ID: "i1", Description: "Award", Value: "1000"}},
			YearsAllowance: "60000",
		},
		Deductions: domain.Deductions{TotalClaims: "20000"},
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, parser.SaveToFile(cf, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cf, loaded, "a saved snapshot restores verbatim")
}
