// Package models holds the structured record types produced by paystub
// analysis.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs rounding differences between the gross, deduction
// and net figures printed on a stub.
var balanceTolerance = decimal.RequireFromString("0.01")

// Paystub is the structured record extracted from one paystub document. It
// is built once per document and read-only afterwards.
type Paystub struct {
	PayDate     time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	RecordID    string

	GrossPay decimal.Decimal
	NetPay   decimal.Decimal

	Earnings      []Transaction
	Deductions    []Transaction
	Distributions []Transaction

	IsRSUVest  bool
	RawPreview string
}

// BalanceResult is the outcome of the gross/deductions/net reconciliation
// check. A mismatch is diagnostic only; callers decide whether to warn,
// reject, or ignore.
type BalanceResult struct {
	OK   bool
	Diff decimal.Decimal
}

// TotalDeductions sums all deduction amounts.
func (p *Paystub) TotalDeductions() decimal.Decimal {
	return SumAmounts(p.Deductions)
}

// ValidateBalance checks that gross pay minus deductions lands within one
// cent of net pay. Diff is expected net minus actual net.
func (p *Paystub) ValidateBalance() BalanceResult {
	diff := p.GrossPay.Sub(p.TotalDeductions()).Sub(p.NetPay)
	return BalanceResult{
		OK:   diff.Abs().LessThan(balanceTolerance),
		Diff: diff,
	}
}
