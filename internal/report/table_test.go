// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	t.Parallel()

	tbl := newTable("lr", "Component", "Total(ms)")
	tbl.AddRow("Button", "5.0")
	tbl.AddRow("VeryLongComponentName", "12.0")

	var buf bytes.Buffer
	tbl.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4 (header, separator, 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Component") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "-+-") {
		t.Errorf("separator = %q", lines[1])
	}
	// Left column pads to the widest cell; right column right-aligns.
	if !strings.HasPrefix(lines[2], "Button ") || len(lines[2]) != len(lines[3]) {
		t.Errorf("left alignment broken: %q vs %q", lines[2], lines[3])
	}
	if !strings.HasSuffix(lines[2], "  5.0") {
		t.Errorf("right alignment broken: %q", lines[2])
	}
}

func TestTableRender_EmptySkipsOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTable("lr", "A", "B").Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty table rendered output: %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"much-too-long-name", 10, "much-too-l"},
		{"anything", 0, "anything"}, // zero width means no limit
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestPad_StyledCellWidths(t *testing.T) {
	t.Parallel()

	styled := "\x1b[31mred\x1b[0m"
	padded := pad(styled, 6, true)
	if !strings.HasSuffix(padded, "   ") {
		t.Errorf("pad miscounted ANSI width: %q", padded)
	}
}

func TestNameColumnWidth_Bounds(t *testing.T) {
	t.Setenv("COLUMNS", "200")
	if got := nameColumnWidth(45); got != 60 {
		t.Errorf("nameColumnWidth = %d, want capped at 60", got)
	}

	t.Setenv("COLUMNS", "40")
	if got := nameColumnWidth(45); got != 20 {
		t.Errorf("nameColumnWidth = %d, want floor of 20", got)
	}
}
