package domain

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a calendar date that may be absent. Malformed or empty input
// unmarshals to the zero Date rather than producing an error, so a partially
// filled case file still loads.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf wraps an existing time.Time, keeping only the calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts "2006-01-02" or RFC3339 input; anything else is treated
// as an absent date.
func ParseDate(s string) Date {
	if s == "" {
		return Date{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t.UTC())
	}
	return Date{}
}

// String renders the date as "2006-01-02", or "" when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// UnmarshalYAML implements yaml.Unmarshaler with the fail-soft contract.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		// Not a scalar; treat as absent.
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.String(), nil
}

// UnmarshalJSON implements json.Unmarshaler with the fail-soft contract.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = ParseDate(s)
	return nil
}

// MarshalJSON implements json.Marshaler. Absent dates encode as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}
