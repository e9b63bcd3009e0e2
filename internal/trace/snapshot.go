// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the display metadata the profiler recorded for one fiber.
type Snapshot struct {
	DisplayName        string `json:"displayName"`
	Name               string `json:"name"`
	CompiledWithForget bool   `json:"compiledWithForget"`
}

// ResolvedName prefers the displayName field over the fallback name field.
// Empty means the snapshot carries no usable name.
func (s Snapshot) ResolvedName() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

// UnknownNamePrefix prefixes the synthesized placeholder name for fibers
// whose identity could not be resolved to a component name.
const UnknownNamePrefix = "Unknown#"

// SnapshotIndex maps fiber identity to its snapshot across all roots of a
// trace. Fiber identities can recur across roots; the later root wins.
type SnapshotIndex map[int64]Snapshot

// BuildSnapshotIndex normalizes every root's snapshot table and merges them
// into one fiber-identity index.
func BuildSnapshotIndex(doc *Document, diag *Diagnostics) SnapshotIndex {
	idx := make(SnapshotIndex)
	for _, root := range doc.Roots {
		for _, pair := range Pairs(root.Snapshots, diag) {
			var snap Snapshot
			if err := json.Unmarshal(pair.Value, &snap); err != nil {
				diag.skipEntry()
				continue
			}
			idx[pair.FiberID] = snap
		}
	}
	return idx
}

// Name returns the resolved display name for a fiber, or a synthesized
// Unknown#<id> placeholder when the fiber has no snapshot or no usable name.
func (idx SnapshotIndex) Name(fiberID int64) string {
	if snap, ok := idx[fiberID]; ok {
		if name := snap.ResolvedName(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%s%d", UnknownNamePrefix, fiberID)
}

// Compiled reports whether the fiber was compiled by React Compiler.
func (idx SnapshotIndex) Compiled(fiberID int64) bool {
	return idx[fiberID].CompiledWithForget
}
