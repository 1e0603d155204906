package analyzer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches currency-looking tokens: optional sign and dollar
// symbol, digits with optional comma grouping in threes, optional
// two-decimal fraction. Only the digits are captured; the sign is dropped
// because amounts are stored as magnitudes.
var amountPattern = regexp.MustCompile(`-?\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// minAmount filters out stray zeros and single-digit noise the broad token
// pattern would otherwise pick up.
var minAmount = decimal.RequireFromString("0.01")

// ExtractAmounts returns every currency-like token on the line as a positive
// decimal, in the order found. Tokens at or below one cent are discarded and
// malformed tokens are silently skipped.
func ExtractAmounts(line string) []decimal.Decimal {
	var amounts []decimal.Decimal
	for _, match := range amountPattern.FindAllStringSubmatch(line, -1) {
		amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
		if err != nil {
			continue
		}
		if amount.GreaterThan(minAmount) {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

func extractAmountsFromLines(lines []string) []decimal.Decimal {
	var all []decimal.Decimal
	for _, line := range lines {
		all = append(all, ExtractAmounts(line)...)
	}
	return all
}

// PickFunc chooses the transaction amount among the numeric tokens found on
// one matching line. ADP prints current-period, year-to-date and rate
// columns on the same text line; the strategy decides which column wins.
type PickFunc func(amounts []decimal.Decimal) (decimal.Decimal, bool)

// PickLargest selects the largest amount on the line. On the stub layouts
// this was tuned against, the current-period figure is the largest value on
// earning and deduction lines. This is a layout heuristic, not a guarantee.
func PickLargest(amounts []decimal.Decimal) (decimal.Decimal, bool) {
	if len(amounts) == 0 {
		return decimal.Zero, false
	}
	largest := amounts[0]
	for _, amount := range amounts[1:] {
		if amount.GreaterThan(largest) {
			largest = amount
		}
	}
	return largest, true
}
