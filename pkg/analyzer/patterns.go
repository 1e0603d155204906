package analyzer

import (
	"sort"

	"github.com/mfreitas/monarchu/pkg/config"
)

// Rule binds a semantic line-item key to the literal spellings ADP uses for
// it in extracted text.
type Rule struct {
	Key      string
	Patterns []string
}

// Built-in pattern tables for ADP paystubs. The mappings file can override
// them through field_mappings; these are the spellings observed on real
// stubs.
var defaultEarningRules = []Rule{
	{Key: "regular", Patterns: []string{"Regular"}},
	{Key: "rsu_vest", Patterns: []string{"Rsu Vest", "RSU Vest"}},
	{Key: "flex_pto", Patterns: []string{"Flex/Pto", "Flex/PTO"}},
	{Key: "holiday_pay", Patterns: []string{"Holiday Pay"}},
	{Key: "std_pto_pay", Patterns: []string{"Stnd Pto Pay", "Std Pto Pay"}},
	{Key: "imputed_income", Patterns: []string{"Imputed Income"}},
}

var defaultDeductionRules = []Rule{
	{Key: "federal_income_tax", Patterns: []string{"Federal Income Tax"}},
	{Key: "medicare_tax", Patterns: []string{"Medicare Tax"}},
	{Key: "medicare_surtax", Patterns: []string{"Medicare Surtax"}},
	{Key: "social_security_tax", Patterns: []string{"Social Security Tax"}},
	{Key: "wa_paid_family_leave", Patterns: []string{"WA Paid Family Leave"}},
	{Key: "wa_paid_medical_leave", Patterns: []string{"WA Paid Medical Leave"}},
	{Key: "401k_traditional", Patterns: []string{"401K-Trad"}},
	{Key: "401k_after_tax", Patterns: []string{"401K After Tax"}},
	{Key: "hsa", Patterns: []string{"Hsa", "HSA"}},
	{Key: "pre_tax_medical", Patterns: []string{"Pre-Tax Medical"}},
	{Key: "pre_tax_dental", Patterns: []string{"Pre-Tax Dental"}},
	{Key: "pre_tax_vision", Patterns: []string{"Pre-Tax Vision"}},
	{Key: "groupterm_life", Patterns: []string{"Groupterm Life"}},
	{Key: "supp_life_ins", Patterns: []string{"Supp Life Ins"}},
	{Key: "supp_add", Patterns: []string{"Supp Ad/D"}},
	{Key: "critic_illness", Patterns: []string{"Critic Illness"}},
	{Key: "oc_park_charge", Patterns: []string{"Oc Park Charge"}},
}

// defaultDistributionPatterns are the account labels ADP prints in the net
// pay distribution section.
var defaultDistributionPatterns = []string{
	"Checking Acct 1",
	"Checking Acct 2",
	"Savings Acct 1",
	"Net Check",
}

// rulesFromPatterns converts a config pattern table into ordered rules. Keys
// are sorted so map iteration order never leaks into the output order.
func rulesFromPatterns(patterns map[string][]string) []Rule {
	keys := make([]string, 0, len(patterns))
	for key := range patterns {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rules := make([]Rule, 0, len(keys))
	for _, key := range keys {
		rules = append(rules, Rule{Key: key, Patterns: patterns[key]})
	}
	return rules
}

func earningRules(m *config.Mappings) []Rule {
	if len(m.FieldMappings.EarningsPatterns) > 0 {
		return rulesFromPatterns(m.FieldMappings.EarningsPatterns)
	}
	return defaultEarningRules
}

func deductionRules(m *config.Mappings) []Rule {
	if len(m.FieldMappings.DeductionPatterns) > 0 {
		return rulesFromPatterns(m.FieldMappings.DeductionPatterns)
	}
	return defaultDeductionRules
}

func distributionPatterns(m *config.Mappings) []string {
	if len(m.FieldMappings.DistributionPatterns) > 0 {
		return m.FieldMappings.DistributionPatterns
	}
	return defaultDistributionPatterns
}
