package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter renders the full report as indented JSON for scripting.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
