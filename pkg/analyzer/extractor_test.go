package analyzer

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitas/monarchu/pkg/config"
	"github.com/mfreitas/monarchu/pkg/corpus"
)

func testExtractor() *Extractor {
	mappings := testMappings()
	return NewExtractor(mappings, NewClassifier(mappings, log.New(io.Discard)), nil)
}

func TestEarningsFirstMatchPerPattern(t *testing.T) {
	// Two lines match "Regular"; only the first produces a transaction.
	doc := corpus.New("Regular 3000.00 48,000.00\nRegular Overtime 120.00", nil, 1)

	earnings := testExtractor().Earnings(doc)
	require.Len(t, earnings, 1)
	assert.Equal(t, "Regular Pay", earnings[0].Description)
	// Largest same-line value wins
	assert.Equal(t, "48000.00", earnings[0].Amount.StringFixed(2))
	assert.Equal(t, "Regular 3000.00 48,000.00", earnings[0].OriginalText)
}

func TestEarningsPatternVariantsDoubleCount(t *testing.T) {
	// "Rsu Vest" and "RSU Vest" are separate pattern spellings; matching is
	// case-insensitive, so a single line satisfies both and yields two
	// transactions. Inherited behavior, kept deliberately.
	doc := corpus.New("RSU Vest 15,000.00", nil, 1)

	earnings := testExtractor().Earnings(doc)
	require.Len(t, earnings, 2)
	assert.Equal(t, earnings[0].Amount, earnings[1].Amount)
	assert.Equal(t, "Income:RSU Vesting", earnings[0].Category)
}

func TestEarningsSkipLinesWithoutAmounts(t *testing.T) {
	doc := corpus.New("Regular Earnings Section\nRegular 3000.00", nil, 1)

	earnings := testExtractor().Earnings(doc)
	require.Len(t, earnings, 1)
	assert.Equal(t, "3000.00", earnings[0].Amount.StringFixed(2))
}

func TestDeductionsPositiveMagnitudes(t *testing.T) {
	doc := corpus.New("Federal Income Tax -450.00 5,400.00", nil, 1)

	deductions := testExtractor().Deductions(doc)
	require.Len(t, deductions, 1)
	assert.Equal(t, "Taxes:Federal Income Tax", deductions[0].Category)
	assert.True(t, deductions[0].Amount.IsPositive())
	assert.Equal(t, "5400.00", deductions[0].Amount.StringFixed(2))
}

func TestDistributionsKeepEveryMatch(t *testing.T) {
	doc := corpus.New(`Checking Acct 1 2000.00
Checking Acct 1 550.00
Savings Acct 1 300.00
Net Check 25.00`, nil, 1)

	distributions := testExtractor().Distributions(doc)
	require.Len(t, distributions, 4)

	assert.Equal(t, "Direct deposit to Primary Checking", distributions[0].Description)
	assert.Equal(t, "Primary Checking", distributions[0].Account)
	assert.Equal(t, "2000.00", distributions[0].Amount.StringFixed(2))
	assert.Equal(t, "550.00", distributions[1].Amount.StringFixed(2))
	assert.Equal(t, "Savings", distributions[2].Account)
	// Unmapped label keeps its raw name
	assert.Equal(t, "Net Check", distributions[3].Account)
	for _, d := range distributions {
		assert.Equal(t, "Transfer:Direct Deposit", d.Category)
	}
}

func TestExtractorUsesConfiguredPatterns(t *testing.T) {
	mappings := testMappings()
	mappings.FieldMappings = config.FieldMappings{
		EarningsPatterns: map[string][]string{
			"on_call": {"On-Call Pay"},
		},
	}
	e := NewExtractor(mappings, NewClassifier(mappings, log.New(io.Discard)), nil)

	doc := corpus.New("Regular 3000.00\nOn-Call Pay 250.00", nil, 1)

	earnings := e.Earnings(doc)
	require.Len(t, earnings, 1)
	// The configured table replaces the built-in one entirely
	assert.Equal(t, "250.00", earnings[0].Amount.StringFixed(2))
	assert.Equal(t, "Earnings:On_Call", earnings[0].Category)
}
