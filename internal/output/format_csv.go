package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes the breakdown as field,value rows followed by one row
// per apportionment entry, for spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(r *Report) ([]byte, error) {
	res := r.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	rows := [][]string{
		{"field", "value"},
		{"years_married", strconv.Itoa(res.YearsMarried)},
		{"applicable_pct", res.ApplicablePct.String()},
		{"deadline", res.Deadline.String()},
		{"deadline_status", string(res.DeadlineStatus)},
		{"total_assets", res.TotalAssets.StringFixed(2)},
		{"total_claims", res.TotalClaims.StringFixed(2)},
		{"allowance_to_others", res.AllowanceToOthers.StringFixed(2)},
		{"net_assets", res.NetAssets.StringFixed(2)},
		{"preliminary_share", res.PreliminaryShare.StringFixed(2)},
		{"property_passing", res.PropertyPassing.StringFixed(2)},
		{"taxes", res.Taxes.StringFixed(2)},
		{"claims_on_spouse", res.ClaimsOnSpouse.StringFixed(2)},
		{"net_property_passing", res.NetPropertyPassing.StringFixed(2)},
		{"elective_share", res.ElectiveShare.StringFixed(2)},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	if len(res.Apportionment) > 0 {
		if err := w.Write([]string{"party", "type", "value", "share", "pct"}); err != nil {
			return nil, err
		}
		for _, e := range res.Apportionment {
			row := []string{
				e.Name,
				string(e.Type),
				e.Value.StringFixed(2),
				e.Share.StringFixed(2),
				e.Pct.StringFixed(4),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
