package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mfreitas/monarchu/pkg/corpus"
)

const stubDateLayout = "01/02/2006"

// recordIDPrefix marks record identifiers as synthesized. ADP advice numbers
// live in encoded regions of the PDF and do not survive text extraction
// reliably, so the identifier is derived from the pay date instead.
const recordIDPrefix = "ADV_"

var (
	payDatePattern     = regexp.MustCompile(`Pay Date:\s*(\d{2}/\d{2}/\d{4})`)
	periodStartPattern = regexp.MustCompile(`Period Beginning:\s*(\d{2}/\d{2}/\d{4})`)
	periodEndPattern   = regexp.MustCompile(`Period Ending:\s*(\d{2}/\d{2}/\d{4})`)
)

// ErrPayDateNotFound is returned when a document carries no parsable pay
// date. It is the only fatal extraction condition.
var ErrPayDateNotFound = errors.New("pay date not found")

// Metadata identifies a paystub: when it was paid, the period it covers and
// the synthesized record identifier.
type Metadata struct {
	PayDate     time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	RecordID    string
}

// ExtractMetadata pulls the pay date and pay period bounds out of the
// document. The pay date is mandatory; a missing period bound defaults from
// the pay date (first day of its month, and the pay date itself).
func ExtractMetadata(doc *corpus.Document) (Metadata, error) {
	text := doc.Text()

	match := payDatePattern.FindStringSubmatch(text)
	if match == nil {
		return Metadata{}, ErrPayDateNotFound
	}
	payDate, err := time.Parse(stubDateLayout, match[1])
	if err != nil {
		return Metadata{}, fmt.Errorf("unparsable pay date %q: %w", match[1], ErrPayDateNotFound)
	}

	meta := Metadata{
		PayDate:     payDate,
		PeriodStart: time.Date(payDate.Year(), payDate.Month(), 1, 0, 0, 0, 0, payDate.Location()),
		PeriodEnd:   payDate,
		RecordID:    recordIDPrefix + payDate.Format("20060102"),
	}

	if match := periodStartPattern.FindStringSubmatch(text); match != nil {
		if start, err := time.Parse(stubDateLayout, match[1]); err == nil {
			meta.PeriodStart = start
		}
	}
	if match := periodEndPattern.FindStringSubmatch(text); match != nil {
		if end, err := time.Parse(stubDateLayout, match[1]); err == nil {
			meta.PeriodEnd = end
		}
	}

	return meta, nil
}
