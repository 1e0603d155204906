package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/mfreitas/monarchu/pkg/analyzer"
	"github.com/mfreitas/monarchu/pkg/config"
	"github.com/mfreitas/monarchu/pkg/pdfext"
	"github.com/mfreitas/monarchu/pkg/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "monarchu",
	Short: "Convert ADP paystub PDFs to Monarch Money CSV files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert paystubs to Monarch Money CSV format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}

		mappings, err := config.LoadMappings(cfg.MappingsFile)
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, mappings, logger)

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if info.IsDir() {
				if _, err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
			} else if err := processor.ProcessFile(match); err != nil {
				logger.Warn("failed to process file", "error", err, "file", match)
			}
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the structured record extracted from one paystub",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		mappings, err := config.LoadMappings(cfg.MappingsFile)
		if err != nil {
			return err
		}

		doc, err := pdfext.Extract(args[0])
		if err != nil {
			return err
		}

		paystub, err := analyzer.New(mappings, logger).Analyze(doc, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d lines over %d page(s)\n", args[0], len(doc.Lines()), doc.Pages())
		pp.Println(paystub)
		return nil
	},
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "monarchu",
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory (default: same as input file)")
	rootCmd.PersistentFlags().StringP("mappings", "m", "", "Category mappings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
