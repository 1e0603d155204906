// Package monarch serializes paystub records into the Monarch Money import
// CSV format.
package monarch

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/mfreitas/monarchu/pkg/models"
)

// Row is one Monarch Money import row. Column order matches the import
// template and must not change.
type Row struct {
	Date                string `csv:"date"`
	Description         string `csv:"description"`
	OriginalDescription string `csv:"original_description"`
	Amount              string `csv:"amount"`
	TransactionType     string `csv:"transaction_type"`
	Category            string `csv:"category"`
	AccountName         string `csv:"account_name"`
	Labels              string `csv:"labels"`
	Notes               string `csv:"notes"`
}

const (
	typeCredit = "credit"
	typeDebit  = "debit"

	// originalTextLimit keeps noisy source lines from overflowing the
	// import preview column.
	originalTextLimit = 100

	defaultPrimaryAccount = "Primary Checking"
)

// Generator flattens paystub records into Monarch import rows.
type Generator struct {
	primaryAccount string
}

// NewGenerator creates a generator. primaryAccount is the account credited
// with earnings and debited for deductions, usually the display name mapped
// as checking_acct_1; empty falls back to a generic name.
func NewGenerator(primaryAccount string) *Generator {
	if primaryAccount == "" {
		primaryAccount = defaultPrimaryAccount
	}
	return &Generator{primaryAccount: primaryAccount}
}

// Rows converts a paystub into one row per transaction: earnings as
// credits, deductions as debits with negated amounts, distributions as
// credits into their target accounts.
func (g *Generator) Rows(p *models.Paystub) []Row {
	rows := make([]Row, 0, len(p.Earnings)+len(p.Deductions)+len(p.Distributions))
	for _, txn := range p.Earnings {
		rows = append(rows, g.row(p, txn, txn.Amount, typeCredit, g.primaryAccount))
	}
	for _, txn := range p.Deductions {
		rows = append(rows, g.row(p, txn, txn.Amount.Neg(), typeDebit, g.primaryAccount))
	}
	for _, txn := range p.Distributions {
		account := txn.Account
		if account == "" {
			account = g.primaryAccount
		}
		rows = append(rows, g.row(p, txn, txn.Amount, typeCredit, account))
	}
	return rows
}

func (g *Generator) row(p *models.Paystub, txn models.Transaction, amount decimal.Decimal, txnType, account string) Row {
	return Row{
		Date:                p.PayDate.Format("2006-01-02"),
		Description:         txn.Description,
		OriginalDescription: truncate(txn.OriginalText, originalTextLimit),
		Amount:              amount.StringFixed(2),
		TransactionType:     txnType,
		Category:            txn.Category,
		AccountName:         account,
		Labels:              labels(p),
		Notes:               notes(p),
	}
}

func notes(p *models.Paystub) string {
	parts := []string{"Pay Date: " + p.PayDate.Format("2006-01-02")}
	if !p.PeriodStart.Equal(p.PayDate) {
		parts = append(parts, fmt.Sprintf("Period: %s to %s",
			p.PeriodStart.Format("2006-01-02"), p.PeriodEnd.Format("2006-01-02")))
	}
	if p.IsRSUVest {
		parts = append(parts, "RSU Vesting Event")
	}
	parts = append(parts, "Advice: "+p.RecordID)
	return strings.Join(parts, " | ")
}

func labels(p *models.Paystub) string {
	var labels []string
	if p.IsRSUVest {
		labels = append(labels, "RSU")
	}
	labels = append(labels, "Payroll", "Pay-"+p.PayDate.Format("2006-01"))
	return strings.Join(labels, ",")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// Write serializes rows with the fixed Monarch header.
func Write(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing monarch csv: %w", err)
	}
	return nil
}

// Filename is the canonical output name for a paystub's CSV.
func Filename(p *models.Paystub) string {
	return fmt.Sprintf("%s_%s_monarch.csv", p.PayDate.Format("2006-01-02"), p.RecordID)
}
