package analyzer

import (
	"github.com/mfreitas/monarchu/pkg/config"
	"github.com/mfreitas/monarchu/pkg/corpus"
	"github.com/mfreitas/monarchu/pkg/models"
)

const distributionCategory = "Transfer:Direct Deposit"

// Extractor runs the pattern tables over a document and produces the three
// transaction groups. It holds no per-document state.
type Extractor struct {
	classifier           *Classifier
	pick                 PickFunc
	earningRules         []Rule
	deductionRules       []Rule
	distributionPatterns []string
}

// NewExtractor wires the pattern tables from the mappings file (or the
// built-in defaults) with a disambiguation strategy. A nil pick falls back
// to PickLargest.
func NewExtractor(mappings *config.Mappings, classifier *Classifier, pick PickFunc) *Extractor {
	if pick == nil {
		pick = PickLargest
	}
	return &Extractor{
		classifier:           classifier,
		pick:                 pick,
		earningRules:         earningRules(mappings),
		deductionRules:       deductionRules(mappings),
		distributionPatterns: distributionPatterns(mappings),
	}
}

// Earnings extracts one transaction per matched earning pattern. The first
// line matching a pattern wins; further lines for the same pattern are
// ignored. Distinct spellings of the same key each produce a transaction
// when both occur, which can double-count one semantic item. That behavior
// is inherited from the stub layouts this was tuned on and is kept as is.
func (e *Extractor) Earnings(doc *corpus.Document) []models.Transaction {
	var earnings []models.Transaction
	for _, rule := range e.earningRules {
		for _, pattern := range rule.Patterns {
			for _, line := range doc.FindLines(pattern, false) {
				amount, ok := e.pick(ExtractAmounts(line))
				if !ok || !amount.IsPositive() {
					continue
				}
				category, description := e.classifier.Classify("earnings", rule.Key, pattern)
				earnings = append(earnings, models.Transaction{
					Description:  description,
					Amount:       amount,
					Category:     category,
					OriginalText: line,
				})
				break
			}
		}
	}
	return earnings
}

// Deductions extracts deduction transactions the same way as earnings, with
// category lookups probing the deduction subsections. Amounts stay positive
// magnitudes here; the CSV layer negates them.
func (e *Extractor) Deductions(doc *corpus.Document) []models.Transaction {
	var deductions []models.Transaction
	for _, rule := range e.deductionRules {
		for _, pattern := range rule.Patterns {
			for _, line := range doc.FindLines(pattern, false) {
				amount, ok := e.pick(ExtractAmounts(line))
				if !ok || !amount.IsPositive() {
					continue
				}
				category, description := e.classifier.ClassifyDeduction(rule.Key, pattern)
				deductions = append(deductions, models.Transaction{
					Description:  description,
					Amount:       amount,
					Category:     category,
					OriginalText: line,
				})
				break
			}
		}
	}
	return deductions
}

// Distributions extracts every net pay deposit line. Unlike earnings and
// deductions there is no first-match cutoff: a stub can split net pay across
// several deposits to the same account label.
func (e *Extractor) Distributions(doc *corpus.Document) []models.Transaction {
	var distributions []models.Transaction
	for _, pattern := range e.distributionPatterns {
		for _, line := range doc.FindLines(pattern, false) {
			amount, ok := e.pick(ExtractAmounts(line))
			if !ok || !amount.IsPositive() {
				continue
			}
			account := e.classifier.AccountName(pattern)
			distributions = append(distributions, models.Transaction{
				Description:  "Direct deposit to " + account,
				Amount:       amount,
				Category:     distributionCategory,
				Account:      account,
				OriginalText: line,
			})
		}
	}
	return distributions
}
