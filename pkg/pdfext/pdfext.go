// Package pdfext extracts the text layer from paystub documents and hands
// it over as a searchable corpus.
package pdfext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mfreitas/monarchu/pkg/corpus"
)

// Extract reads the document at path and returns its normalized line
// corpus. PDF files must carry a text layer; image-only scans are rejected.
// Plain text files are accepted as-is, which keeps fixtures and ad-hoc
// debugging away from PDF tooling.
func Extract(path string) (*corpus.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt":
		return extractText(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func extractText(path string) (*corpus.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return corpus.New(string(data), nil, 1), nil
}

func extractPDF(path string) (*corpus.Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	pages := reader.NumPage()
	for num := 1; num <= pages; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("error extracting text from %s page %d: %w", path, num, err)
		}
		// Rows come back in reading order; fragments within a row are
		// joined with spaces to rebuild one physical stub line.
		for _, row := range rows {
			var sb strings.Builder
			for _, text := range row.Content {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text.S)
			}
			lines = append(lines, sb.String())
		}
	}

	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in %s, the PDF may be image-based", path)
	}
	return corpus.New(text, nil, pages), nil
}
