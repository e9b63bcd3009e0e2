// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/elastic/renderlens/internal/config"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
// Values are bound via Viper; variables keep Cobra compatibility.
var (
	topFlag     int
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "renderlens",
	Short: "Analyze React DevTools profiler exports",
	Long: `RenderLens - Diagnose rendering performance from React DevTools Profiler v5 exports.

Analyze a single capture with 'renderlens analyze', or compare two captures
taken before and after a code change with 'renderlens compare'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	// Global flags (Viper precedence: flags > env > settings file > defaults)
	rootCmd.PersistentFlags().IntVar(&topFlag, "top", config.DefaultTop, "Number of top components to show (env: RENDERLENS_REPORT_TOP)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output (env: RENDERLENS_REPORT_NO_COLOR)")
}
