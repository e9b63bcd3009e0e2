// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// table renders aligned plain-text tables. Alignments is one letter per
// column: 'l' left, anything else right. Cell widths are measured with
// ansi so styled cells don't skew columns.
type table struct {
	headers    []string
	alignments string
	rows       [][]string
}

func newTable(alignments string, headers ...string) *table {
	return &table{headers: headers, alignments: alignments}
}

func (t *table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) Render(w io.Writer) {
	if len(t.rows) == 0 {
		return
	}
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && ansi.StringWidth(cell) > widths[i] {
				widths[i] = ansi.StringWidth(cell)
			}
		}
	}

	fmtRow := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			align := byte('r')
			if i < len(t.alignments) {
				align = t.alignments[i]
			}
			parts[i] = pad(cell, widths[i], align == 'l')
		}
		return strings.Join(parts, " | ")
	}

	fmt.Fprintln(w, fmtRow(t.headers))
	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(seps, "-+-"))
	for _, row := range t.rows {
		fmt.Fprintln(w, fmtRow(row))
	}
}

// pad pads to width without disturbing embedded ANSI sequences.
func pad(value string, width int, left bool) string {
	gap := width - ansi.StringWidth(value)
	if gap <= 0 {
		return value
	}
	if left {
		return value + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + value
}

// truncate shortens a cell to at most width display columns.
func truncate(value string, width int) string {
	if width <= 0 || ansi.StringWidth(value) <= width {
		return value
	}
	return ansi.Truncate(value, width, "")
}

func detectTerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if env := os.Getenv("COLUMNS"); env != "" {
		if val, err := strconv.Atoi(env); err == nil && val > 0 {
			return val
		}
	}
	return 80
}

// nameColumnWidth bounds component-name columns so wide tables still fit
// the terminal; fixedCols is the width the other columns typically need.
func nameColumnWidth(fixedCols int) int {
	width := detectTerminalWidth() - fixedCols
	if width < 20 {
		return 20
	}
	if width > 60 {
		return 60
	}
	return width
}
