package models

import "github.com/shopspring/decimal"

// Transaction is a single line item extracted from a paystub: one earning,
// one deduction, or one net pay distribution. Amounts are stored as positive
// magnitudes; the CSV layer applies the sign convention for its target.
type Transaction struct {
	Description  string
	Amount       decimal.Decimal
	Category     string
	Account      string
	Notes        string
	OriginalText string // source line kept for audit
}

// SumAmounts totals the amounts of a transaction group.
func SumAmounts(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}
