// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

// Package trace loads React DevTools Profiler v5 JSON exports and
// normalizes their ambiguous per-fiber map encoding into a canonical
// ordered-pairs form that the analysis packages consume.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is a parsed profiler v5 export.
// A missing dataForRoots key yields an empty Roots slice, not an error.
type Document struct {
	Version int    `json:"version"`
	Roots   []Root `json:"dataForRoots"`
}

// Root holds one capture root: its snapshot table and commit sequence.
// Snapshots stays raw because the wire encoding is ambiguous (object map
// or pair list); it is resolved through Pairs.
type Root struct {
	DisplayName string          `json:"displayName"`
	Snapshots   json.RawMessage `json:"snapshots"`
	Commits     []Commit        `json:"commitData"`
}

// Commit is one rendering pass recorded by the profiler.
// The two duration maps stay raw for the same reason as Root.Snapshots.
type Commit struct {
	Timestamp            float64         `json:"timestamp"`
	PriorityLevel        json.RawMessage `json:"priorityLevel"`
	FiberSelfDurations   json.RawMessage `json:"fiberSelfDurations"`
	FiberActualDurations json.RawMessage `json:"fiberActualDurations"`
}

// Priority returns the commit's priority label as a string.
// The wire value may be any JSON type; strings are unquoted, other
// values keep their JSON text, absent or null becomes "unknown".
func (c Commit) Priority() string {
	raw := strings.TrimSpace(string(c.PriorityLevel))
	if raw == "" || raw == "null" {
		return "unknown"
	}
	var s string
	if err := json.Unmarshal(c.PriorityLevel, &s); err == nil {
		return s
	}
	return raw
}

// Parse decodes a profiler export from raw bytes.
// Malformed top-level JSON fails fast; there is no partial recovery.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse profiling data: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a profiler export from disk.
// A missing or unreadable file fails before any parse attempt.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiling data: %w", err)
	}
	return Parse(data)
}
