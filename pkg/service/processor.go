// Package service drives batch conversion of paystub documents into Monarch
// CSV files.
package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mfreitas/monarchu/pkg/analyzer"
	"github.com/mfreitas/monarchu/pkg/config"
	"github.com/mfreitas/monarchu/pkg/models"
	"github.com/mfreitas/monarchu/pkg/monarch"
	"github.com/mfreitas/monarchu/pkg/pdfext"
)

// Processor converts each paystub document it is given. Documents are
// processed independently; one failure never aborts the rest of a batch.
type Processor struct {
	config    *config.Config
	analyzer  *analyzer.Analyzer
	generator *monarch.Generator
	logger    *log.Logger
}

func NewProcessor(cfg *config.Config, mappings *config.Mappings, logger *log.Logger) *Processor {
	primary, _ := mappings.Account("checking_acct_1")
	return &Processor{
		config:    cfg,
		analyzer:  analyzer.New(mappings, logger),
		generator: monarch.NewGenerator(primary),
		logger:    logger,
	}
}

// Summary reports per-batch outcome counts.
type Summary struct {
	Processed int
	Failed    int
}

// ProcessDirectory converts every supported file directly under dir.
// Per-document failures are logged and counted, not propagated.
func (p *Processor) ProcessDirectory(dir string) (Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("error reading directory: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := p.ProcessFile(path); err != nil {
			p.logger.Error("failed to process paystub", "file", entry.Name(), "error", err)
			summary.Failed++
			continue
		}
		summary.Processed++
	}

	p.logger.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed)
	return summary, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

// ProcessFile converts a single paystub document into a Monarch CSV placed
// next to it, or under the configured output directory.
func (p *Processor) ProcessFile(path string) error {
	doc, err := pdfext.Extract(path)
	if err != nil {
		return fmt.Errorf("error extracting text: %w", err)
	}

	paystub, err := p.analyzer.Analyze(doc, filepath.Base(path))
	if err != nil {
		return err
	}

	outPath, err := p.outputPath(path, paystub)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer out.Close()

	rows := p.generator.Rows(paystub)
	if err := monarch.Write(out, rows); err != nil {
		return err
	}

	p.logger.Info("wrote monarch csv", "input", path, "output", outPath, "rows", len(rows))
	return nil
}

func (p *Processor) outputPath(inputPath string, paystub *models.Paystub) (string, error) {
	name := monarch.Filename(paystub)
	if p.config.OutputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name), nil
	}
	if err := os.MkdirAll(p.config.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return filepath.Join(p.config.OutputDir, name), nil
}
