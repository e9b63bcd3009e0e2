// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/elastic/renderlens/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage renderlens configuration",
	Long: `Inspect and bootstrap the renderlens settings file.

Configuration is stored in ~/.config/renderlens/config.yaml and provides
defaults below flags and RENDERLENS_* environment variables.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := config.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("configuration not loaded")
		}
		if _, err := config.LoadSettings(); err != nil {
			return fmt.Errorf("settings file: %w", err)
		}
		fmt.Printf("report.top:      %d\n", cfg.Report.Top)
		fmt.Printf("report.no_color: %v\n", cfg.Report.NoColor)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		top := config.DefaultTop
		noColor := false
		settings := &config.Settings{
			Report: config.ReportSettings{Top: &top, NoColor: &noColor},
		}
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
