// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadAndAnalyze(t *testing.T) {
	path := writeFixture(t, `{"dataForRoots": [{
		"snapshots": {"1": {"displayName": "Button"}},
		"commitData": [{"timestamp": 100, "fiberSelfDurations": {"1": 5.0}}]
	}]}`)

	res, err := loadAndAnalyze(path)
	if err != nil {
		t.Fatalf("loadAndAnalyze returned error: %v", err)
	}
	if res.Overall.TotalCommits != 1 {
		t.Errorf("TotalCommits = %d, want 1", res.Overall.TotalCommits)
	}
	if res.Components[1].Name != "Button" {
		t.Errorf("component name = %q, want %q", res.Components[1].Name, "Button")
	}
}

func TestLoadAndAnalyze_MissingFile(t *testing.T) {
	_, err := loadAndAnalyze(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("loadAndAnalyze accepted a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want not-found message", err)
	}
}

func TestLoadAndAnalyze_MalformedJSON(t *testing.T) {
	path := writeFixture(t, `{"dataForRoots": [`)
	if _, err := loadAndAnalyze(path); err == nil {
		t.Fatal("loadAndAnalyze accepted malformed JSON")
	}
}

func TestLoadAndAnalyze_EmptyTrace(t *testing.T) {
	path := writeFixture(t, `{}`)
	res, err := loadAndAnalyze(path)
	if err != nil {
		t.Fatalf("loadAndAnalyze returned error: %v", err)
	}
	if res.Overall.TotalCommits != 0 {
		t.Errorf("TotalCommits = %d, want 0", res.Overall.TotalCommits)
	}
}
