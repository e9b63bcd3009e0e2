// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

// Package report renders analysis and comparison results as terminal
// reports and as CSV exports. It consumes the core result structures and
// owns all presentation concerns.
package report

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFCC00")
	errorColor   = lipgloss.Color("#FF5F56")
	mutedColor   = lipgloss.Color("#6C757D")
)

// Styles holds the lipgloss styles used by the text reports.
type Styles struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Muted     lipgloss.Style
	Improved  lipgloss.Style
	Regressed lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		Section:   lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(mutedColor),
		Improved:  lipgloss.NewStyle().Foreground(successColor),
		Regressed: lipgloss.NewStyle().Bold(true).Foreground(errorColor),
		Warning:   lipgloss.NewStyle().Foreground(warningColor),
	}
}

// PlainStyles returns pass-through styles for --no-color output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:     plain,
		Section:   plain,
		Muted:     plain,
		Improved:  plain,
		Regressed: plain,
		Warning:   plain,
	}
}
