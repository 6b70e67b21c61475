// Package config loads and saves case files. The case file is the full input
// snapshot for one calculation; the engine itself never touches disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/estatecalc/esc/internal/domain"
)

// InputParser handles parsing of case files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case file from a YAML file. Monetary fields stay raw
// strings (the engine normalizes them) and malformed dates load as absent,
// so an incomplete or sloppy case file still produces a usable snapshot.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cf domain.CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.Normalize(&cf)
	return &cf, nil
}

// Normalize fills in what the engine expects: identifiers on assets and
// receipt items, and a recognized asset type. Unknown asset types degrade to
// "other" rather than failing the load.
func (ip *InputParser) Normalize(cf *domain.CaseFile) {
	for i := range cf.Assets {
		a := &cf.Assets[i]
		a.EnsureID()
		if !a.Type.Valid() {
			a.Type = domain.AssetOther
		}
	}
	for i := range cf.Spouse.Items {
		cf.Spouse.Items[i].EnsureID()
	}
}

// SaveToFile writes the full input snapshot back out as YAML. A saved file
// loads back to the same snapshot.
func (ip *InputParser) SaveToFile(cf *domain.CaseFile, filename string) error {
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal case file: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
