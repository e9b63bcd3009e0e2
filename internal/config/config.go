// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

// Package config provides centralized configuration management for
// renderlens. It supports deterministic precedence (flags > env > settings
// file > defaults) using Viper, and fail-fast validation to prevent silent
// misconfiguration.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration. Analysis thresholds (frame
// budget, cluster rules) are fixed constants in the analysis package; only
// presentation knobs are configurable.
type Config struct {
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Top     int  `mapstructure:"top"`      // Number of top components to show
	NoColor bool `mapstructure:"no_color"` // Disable colored output
}

// Default configuration values.
const (
	DefaultTop = 20
)

// ContextKey is used to store config in context.
type ContextKey struct{}

// FromContext retrieves Config from context.
func FromContext(ctx context.Context) (Config, bool) {
	cfg, ok := ctx.Value(ContextKey{}).(Config)
	return cfg, ok
}

// WithContext stores Config in context.
func WithContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ContextKey{}, cfg)
}

// Load builds a Config using Viper with precedence: flags > env > settings
// file > defaults. It binds flags from the command (and its parents) and
// fails fast on invalid values.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RENDERLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	applySettingsFile(v)
	if err := bindFlagsRecursive(v, cmd); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers default values with Viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("report.top", DefaultTop)
	v.SetDefault("report.no_color", false)
}

// applySettingsFile layers the optional on-disk settings file under env
// and flags. A missing file is fine; a broken one is ignored here and
// surfaced by 'renderlens config show'.
func applySettingsFile(v *viper.Viper) {
	settings, err := LoadSettings()
	if err != nil {
		return
	}
	if settings.Report.Top != nil {
		v.SetDefault("report.top", *settings.Report.Top)
	}
	if settings.Report.NoColor != nil {
		v.SetDefault("report.no_color", *settings.Report.NoColor)
	}
}

// bindFlagsRecursive binds flags from cmd and all parents so Viper sees them.
func bindFlagsRecursive(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	if err := bindFlagSet(v, cmd.Flags()); err != nil {
		return err
	}
	if err := bindFlagSet(v, cmd.PersistentFlags()); err != nil {
		return err
	}
	return bindFlagsRecursive(v, cmd.Parent())
}

// bindFlagSet binds flags to Viper keys using explicit mappings to nested keys.
func bindFlagSet(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	flagToKey := map[string]string{
		"top":      "report.top",
		"no-color": "report.no_color",
	}

	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagToKey[f.Name]
		if !ok {
			// Fallback: replace "-" with "." to allow nested binding if names align
			key = strings.ReplaceAll(f.Name, "-", ".")
		}
		_ = v.BindPFlag(key, f)
	})
	return nil
}

// Validate enforces correctness and fails fast on invalid configuration.
func (c Config) Validate() error {
	if c.Report.Top <= 0 {
		return fmt.Errorf("report.top must be > 0")
	}
	return nil
}
