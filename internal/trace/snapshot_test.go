// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"testing"
)

func mustParse(t *testing.T, raw string) *Document {
	t.Helper()
	doc, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return doc
}

func TestBuildSnapshotIndex_NameResolution(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"dataForRoots": [{"snapshots": {
		"1": {"displayName": "Button", "name": "b"},
		"2": {"name": "List"},
		"3": {"displayName": "", "name": ""},
		"4": {"compiledWithForget": true}
	}}]}`)
	idx := BuildSnapshotIndex(doc, nil)

	tests := []struct {
		fiberID int64
		want    string
	}{
		{1, "Button"},      // displayName wins over name
		{2, "List"},        // fallback to name
		{3, "Unknown#3"},   // both empty
		{4, "Unknown#4"},   // neither present
		{99, "Unknown#99"}, // no snapshot at all
	}
	for _, tt := range tests {
		if got := idx.Name(tt.fiberID); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.fiberID, got, tt.want)
		}
	}

	if !idx.Compiled(4) {
		t.Error("Compiled(4) = false, want true")
	}
	if idx.Compiled(1) {
		t.Error("Compiled(1) = true, want false")
	}
}

func TestBuildSnapshotIndex_LaterRootWins(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"dataForRoots": [
		{"snapshots": {"1": {"displayName": "First"}}},
		{"snapshots": {"1": {"displayName": "Second"}}}
	]}`)
	idx := BuildSnapshotIndex(doc, nil)

	if got := idx.Name(1); got != "Second" {
		t.Errorf("Name(1) = %q, want %q", got, "Second")
	}
}

func TestBuildSnapshotIndex_PairListForm(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `{"dataForRoots": [{"snapshots": [
		[1, {"displayName": "Button"}],
		"junk",
		[2, {"name": "List", "compiledWithForget": true}]
	]}]}`)
	var diag Diagnostics
	idx := BuildSnapshotIndex(doc, &diag)

	if got := idx.Name(1); got != "Button" {
		t.Errorf("Name(1) = %q, want %q", got, "Button")
	}
	if got := idx.Name(2); got != "List" {
		t.Errorf("Name(2) = %q, want %q", got, "List")
	}
	if !idx.Compiled(2) {
		t.Error("Compiled(2) = false, want true")
	}
	if diag.SkippedEntries != 1 {
		t.Errorf("SkippedEntries = %d, want 1", diag.SkippedEntries)
	}
}
