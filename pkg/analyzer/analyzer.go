// Package analyzer turns the raw text of an ADP paystub into a structured
// record: metadata, earnings, deductions and net pay distributions. The
// text is noisy and loosely structured, so extraction is pattern-driven and
// degrades to empty results rather than failing; only a missing pay date is
// fatal.
package analyzer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mfreitas/monarchu/pkg/config"
	"github.com/mfreitas/monarchu/pkg/corpus"
	"github.com/mfreitas/monarchu/pkg/models"
)

// previewLines is how much of the document is kept on the record for audit.
const previewLines = 20

// Analyzer drives metadata extraction, RSU detection and transaction
// extraction for one document at a time. It is stateless across documents
// and safe to reuse for a whole batch.
type Analyzer struct {
	extractor *Extractor
	logger    *log.Logger
}

// New builds an analyzer with the default disambiguation strategy.
func New(mappings *config.Mappings, logger *log.Logger) *Analyzer {
	return NewWithPick(mappings, logger, PickLargest)
}

// NewWithPick builds an analyzer with a custom amount disambiguation
// strategy, for stub layouts where the largest same-line value is not the
// current-period figure.
func NewWithPick(mappings *config.Mappings, logger *log.Logger, pick PickFunc) *Analyzer {
	classifier := NewClassifier(mappings, logger)
	return &Analyzer{
		extractor: NewExtractor(mappings, classifier, pick),
		logger:    logger,
	}
}

// Analyze builds the structured paystub record for one document. filename
// is used only for log and error context. A balance mismatch is logged as a
// warning; the record is returned either way.
func (a *Analyzer) Analyze(doc *corpus.Document, filename string) (*models.Paystub, error) {
	meta, err := ExtractMetadata(doc)
	if err != nil {
		return nil, fmt.Errorf("error analyzing paystub %s: %w", filename, err)
	}

	isRSUVest := DetectRSUVest(doc)

	earnings := a.extractor.Earnings(doc)
	deductions := a.extractor.Deductions(doc)
	distributions := a.extractor.Distributions(doc)

	paystub := &models.Paystub{
		PayDate:       meta.PayDate,
		PeriodStart:   meta.PeriodStart,
		PeriodEnd:     meta.PeriodEnd,
		RecordID:      meta.RecordID,
		GrossPay:      models.SumAmounts(earnings),
		NetPay:        models.SumAmounts(distributions),
		Earnings:      earnings,
		Deductions:    deductions,
		Distributions: distributions,
		IsRSUVest:     isRSUVest,
		RawPreview:    doc.Preview(previewLines),
	}

	if balance := paystub.ValidateBalance(); !balance.OK {
		a.logger.Warn("balance validation failed",
			"file", filename,
			"gross", paystub.GrossPay,
			"net", paystub.NetPay,
			"deductions", paystub.TotalDeductions(),
			"diff", balance.Diff)
	}

	a.logger.Info("analyzed paystub",
		"file", filename,
		"rsu_vest", isRSUVest,
		"gross", paystub.GrossPay,
		"net", paystub.NetPay)

	return paystub, nil
}
