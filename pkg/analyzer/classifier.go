package analyzer

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/mfreitas/monarchu/pkg/config"
)

// deductionSubsections is the probe order for deduction category lookups.
var deductionSubsections = []string{"statutory", "retirement", "healthcare", "life_insurance", "other"}

// Classifier resolves a matched line item to a budgeting category and
// display description using the user-editable mappings table. Lookups never
// fail: a miss falls back to a synthesized category so every extracted item
// still lands somewhere visible after import.
type Classifier struct {
	mappings *config.Mappings
	logger   *log.Logger
}

func NewClassifier(mappings *config.Mappings, logger *log.Logger) *Classifier {
	return &Classifier{mappings: mappings, logger: logger}
}

// Classify resolves section/key to a category and description. pattern is
// the literal text that matched the line and doubles as the fallback
// description.
func (c *Classifier) Classify(section, key, pattern string) (category, description string) {
	if mapping, ok := c.mappings.Lookup(section, key); ok {
		return mapping.Category, mapping.Description
	}
	c.logger.Warn("no category mapping", "section", section, "key", key)
	return titleCase(section) + ":" + titleCase(key), pattern
}

// ClassifyDeduction probes the deduction subsections in a fixed order and
// uses the first one that carries a mapping for key.
func (c *Classifier) ClassifyDeduction(key, pattern string) (category, description string) {
	for _, sub := range deductionSubsections {
		if mapping, ok := c.mappings.Lookup("deductions."+sub, key); ok {
			return mapping.Category, mapping.Description
		}
	}
	c.logger.Warn("no category mapping", "section", "deductions", "key", key)
	return "Deductions:" + titleCase(key), pattern
}

// AccountName maps a distribution label such as "Checking Acct 1" to its
// configured display name, falling back to the label itself.
func (c *Classifier) AccountName(label string) string {
	key := strings.ReplaceAll(strings.ToLower(label), " ", "_")
	if name, ok := c.mappings.Account(key); ok {
		return name
	}
	return label
}

// titleCase upper-cases the first character of every alphanumeric run and
// lower-cases the rest, so "unknown_type" becomes "Unknown_Type" and "401k"
// becomes "401K".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			prevLetter = false
			continue
		}
		if prevLetter {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		prevLetter = true
	}
	return b.String()
}
