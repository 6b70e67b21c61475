package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"Plain date", "2024-01-15", NewDate(2024, time.January, 15)},
		{"RFC3339 keeps the calendar day", "2024-01-15T18:30:00Z", NewDate(2024, time.January, 15)},
		{"Empty is absent", "", Date{}},
		{"Garbage is absent", "not-a-date", Date{}},
		{"US format is absent", "01/15/2024", Date{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDate(tc.input))
		})
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2024-01-15", NewDate(2024, time.January, 15).String())
	assert.Equal(t, "", Date{}.String())
}

func TestDateYAMLFailSoft(t *testing.T) {
	var doc struct {
		When Date `yaml:"when"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("when: 2024-06-15"), &doc))
	assert.Equal(t, NewDate(2024, time.June, 15), doc.When)

	// Malformed dates load as absent, never as an error.
	require.NoError(t, yaml.Unmarshal([]byte("when: June 15th"), &doc))
	assert.True(t, doc.When.IsZero())

	require.NoError(t, yaml.Unmarshal([]byte("when: [1, 2]"), &doc))
	assert.True(t, doc.When.IsZero())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 15)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-15"`, string(data))

	var back Date
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}

func TestDateJSONAbsent(t *testing.T) {
	data, err := Date{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.True(t, d.IsZero())

	require.NoError(t, d.UnmarshalJSON([]byte(`"bogus"`)))
	assert.True(t, d.IsZero())
}
