// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings represents the on-disk configuration file structure.
// Stored at ~/.config/renderlens/config.yaml. Pointer fields distinguish
// unset from zero so the file can override only what it names.
type Settings struct {
	Report ReportSettings `yaml:"report,omitempty"`
}

// ReportSettings holds report rendering defaults from the settings file.
type ReportSettings struct {
	Top     *int  `yaml:"top,omitempty"`
	NoColor *bool `yaml:"no-color,omitempty"`
}

// Default configuration directory and file names.
const (
	ConfigDirName  = "renderlens"
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the path to the renderlens config directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/renderlens
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadSettings loads the settings file from disk.
// Returns empty Settings if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes the settings file to disk.
// Creates the config directory if it doesn't exist.
func SaveSettings(settings *Settings) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
