package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/mfreitas/monarchu/pkg/corpus"
)

var (
	rsuRegularRatio = decimal.NewFromInt(2)
	rsuVestFloor    = decimal.NewFromInt(10000)
)

// DetectRSUVest decides whether the stub documents an RSU vesting event.
// A vest shows up as an outsized RSU earnings line relative to regular pay.
// This is a heuristic over noisy text, not a classifier with guarantees: it
// compares whatever amounts happen to parse from the matching lines.
func DetectRSUVest(doc *corpus.Document) bool {
	rsuLines := doc.FindLines("rsu vest", false)
	if len(rsuLines) == 0 {
		return false
	}

	rsuAmounts := extractAmountsFromLines(rsuLines)
	regularAmounts := extractAmountsFromLines(doc.FindLines("regular", false))

	switch {
	case len(rsuAmounts) > 0 && len(regularAmounts) > 0:
		return rsuAmounts[0].GreaterThan(regularAmounts[0].Mul(rsuRegularRatio))
	case len(rsuAmounts) > 0:
		return rsuAmounts[0].GreaterThan(rsuVestFloor)
	default:
		// RSU lines exist but no amount parsed; presence alone counts.
		return true
	}
}
