// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elastic/renderlens/internal/analysis"
	"github.com/elastic/renderlens/internal/config"
	"github.com/elastic/renderlens/internal/report"
	"github.com/elastic/renderlens/internal/trace"
	"github.com/spf13/cobra"
)

var (
	analyzeJSONFlag bool
	analyzeCSVFlag  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single profiling capture",
	Long: `Analyze a React DevTools Profiler v5 JSON export.

Prints a human-readable report by default. Use --json for a machine-readable
overall summary, or --csv to dump the component table or commit timeline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0])
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSONFlag, "json", false, "Output overall stats as JSON")
	analyzeCmd.Flags().StringVar(&analyzeCSVFlag, "csv", "", "Export CSV to stdout (components|commits)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, path string) error {
	cfg, ok := config.FromContext(cmd.Context())
	if !ok {
		return fmt.Errorf("configuration not loaded")
	}
	if analyzeCSVFlag != "" && analyzeCSVFlag != "components" && analyzeCSVFlag != "commits" {
		return fmt.Errorf("invalid --csv target %q (want components or commits)", analyzeCSVFlag)
	}

	res, err := loadAndAnalyze(path)
	if err != nil {
		return err
	}

	switch {
	case analyzeJSONFlag:
		return printOverallJSON(res.Overall)
	case analyzeCSVFlag == "components":
		return report.WriteComponentsCSV(os.Stdout, res)
	case analyzeCSVFlag == "commits":
		return report.WriteCommitsCSV(os.Stdout, res)
	default:
		report.RenderAnalysis(os.Stdout, res, cfg.Report.Top, reportStyles(cfg))
		return nil
	}
}

// loadAndAnalyze preflights the file, reports its size to stderr, then
// loads and aggregates it. Absence fails before any parse attempt.
func loadAndAnalyze(path string) (*analysis.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s not found", path)
	}

	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Fprintf(os.Stderr, "Loading %s (%.1f MB)...\n", info.Name(), sizeMB)

	doc, err := trace.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return analysis.Analyze(doc), nil
}

func printOverallJSON(overall analysis.Overall) error {
	out, err := json.MarshalIndent(overall, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal overall stats: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func reportStyles(cfg config.Config) report.Styles {
	if cfg.Report.NoColor {
		return report.PlainStyles()
	}
	return report.DefaultStyles()
}
