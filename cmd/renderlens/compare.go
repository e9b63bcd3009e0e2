// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elastic/renderlens/internal/compare"
	"github.com/elastic/renderlens/internal/config"
	"github.com/elastic/renderlens/internal/report"
	"github.com/spf13/cobra"
)

var compareJSONFlag bool

var compareCmd = &cobra.Command{
	Use:   "compare <before> <after>",
	Short: "Compare two profiling captures (before/after)",
	Long: `Compare two React DevTools profiling sessions.

Components are matched by display name across the two captures and
classified as eliminated, new, improved, or regressed. Both traces are
held in memory at once; captures can be tens of megabytes each.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args[0], args[1])
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSONFlag, "json", false, "Output both overall summaries as JSON")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, beforePath, afterPath string) error {
	cfg, ok := config.FromContext(cmd.Context())
	if !ok {
		return fmt.Errorf("configuration not loaded")
	}

	// Both files must exist before either parse begins.
	for _, p := range []struct{ label, path string }{
		{"before", beforePath},
		{"after", afterPath},
	} {
		if _, err := os.Stat(p.path); err != nil {
			return fmt.Errorf("%s file not found: %s", p.label, p.path)
		}
	}

	fmt.Fprintln(os.Stderr, "Loading BEFORE...")
	before, err := loadAndAnalyze(beforePath)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Loading AFTER...")
	after, err := loadAndAnalyze(afterPath)
	if err != nil {
		return err
	}

	cmp := compare.Compare(before, after)

	if compareJSONFlag {
		out, err := json.MarshalIndent(cmp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal comparison: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	report.RenderComparison(os.Stdout, cmp,
		filepath.Base(beforePath), filepath.Base(afterPath),
		cfg.Report.Top, reportStyles(cfg))
	return nil
}
