// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	// Root-level flags
	cmd.PersistentFlags().Int("top", DefaultTop, "")
	cmd.PersistentFlags().Bool("no-color", false, "")
	return cmd
}

func isolateConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("RENDERLENS_REPORT_TOP", "")
	t.Setenv("RENDERLENS_REPORT_NO_COLOR", "")

	cfg, err := Load(newTestCmd())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Report.Top != DefaultTop {
		t.Errorf("Report.Top = %d, want %d", cfg.Report.Top, DefaultTop)
	}
	if cfg.Report.NoColor {
		t.Error("Report.NoColor = true, want false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("RENDERLENS_REPORT_TOP", "50")
	t.Setenv("RENDERLENS_REPORT_NO_COLOR", "true")

	cfg, err := Load(newTestCmd())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Report.Top != 50 {
		t.Errorf("Report.Top = %d, want 50", cfg.Report.Top)
	}
	if !cfg.Report.NoColor {
		t.Error("Report.NoColor = false, want true")
	}
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("RENDERLENS_REPORT_TOP", "50")

	cmd := newTestCmd()
	if err := cmd.PersistentFlags().Set("top", "7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err := Load(cmd)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Report.Top != 7 {
		t.Errorf("Report.Top = %d, want 7 (flag beats env)", cfg.Report.Top)
	}
}

func TestLoad_SettingsFileBelowEnv(t *testing.T) {
	isolateConfigDir(t)

	top := 33
	if err := SaveSettings(&Settings{Report: ReportSettings{Top: &top}}); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	cfg, err := Load(newTestCmd())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Report.Top != 33 {
		t.Errorf("Report.Top = %d, want 33 (from settings file)", cfg.Report.Top)
	}

	t.Setenv("RENDERLENS_REPORT_TOP", "44")
	cfg, err = Load(newTestCmd())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Report.Top != 44 {
		t.Errorf("Report.Top = %d, want 44 (env beats settings file)", cfg.Report.Top)
	}
}

func TestLoad_ValidationFailsFast(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("RENDERLENS_REPORT_TOP", "0")

	if _, err := Load(newTestCmd()); err == nil {
		t.Fatal("Load accepted report.top = 0")
	}
}
