package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping is one category/description pair for a recognized line item.
type Mapping struct {
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// FieldMappings carries the literal text patterns used to match stub lines,
// keyed by semantic item key. Empty tables fall back to the built-in ADP
// patterns.
type FieldMappings struct {
	EarningsPatterns     map[string][]string `yaml:"earnings_patterns"`
	DeductionPatterns    map[string][]string `yaml:"deduction_patterns"`
	DistributionPatterns []string            `yaml:"distribution_patterns"`
}

// Mappings is the user-editable table translating raw paystub line items
// into budgeting categories, descriptions and account names.
type Mappings struct {
	Earnings        map[string]Mapping            `yaml:"earnings"`
	Deductions      map[string]map[string]Mapping `yaml:"deductions"`
	AccountMappings map[string]string             `yaml:"account_mappings"`
	FieldMappings   FieldMappings                 `yaml:"field_mappings"`
}

// LoadMappings reads and validates the category mappings YAML file.
func LoadMappings(path string) (*Mappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading category mappings: %w", err)
	}

	var m Mappings
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing category mappings: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid category mappings %s: %w", path, err)
	}
	return &m, nil
}

// Validate enforces the sections the extraction engine depends on. Pattern
// tables may be empty but must be present, so a stripped-down file fails
// loudly instead of silently matching nothing the user expects.
func (m *Mappings) Validate() error {
	if m.Earnings == nil {
		return errors.New("missing required section: earnings")
	}
	if m.Deductions == nil {
		return errors.New("missing required section: deductions")
	}
	if m.FieldMappings.EarningsPatterns == nil {
		return errors.New("missing earnings_patterns in field_mappings")
	}
	if m.FieldMappings.DeductionPatterns == nil {
		return errors.New("missing deduction_patterns in field_mappings")
	}
	return nil
}

// Lookup resolves a section/item pair. Section is either a top-level name
// ("earnings") or a dotted deductions subsection ("deductions.statutory").
func (m *Mappings) Lookup(section, item string) (Mapping, bool) {
	if sub, ok := strings.CutPrefix(section, "deductions."); ok {
		mapping, ok := m.Deductions[sub][item]
		return mapping, ok
	}
	if section == "earnings" {
		mapping, ok := m.Earnings[item]
		return mapping, ok
	}
	return Mapping{}, false
}

// Account returns the display name registered for a normalized account key
// (lowercase, spaces replaced with underscores).
func (m *Mappings) Account(key string) (string, bool) {
	name, ok := m.AccountMappings[key]
	return name, ok
}
