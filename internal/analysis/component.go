// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

// Package analysis aggregates a loaded profiler trace into per-component
// statistics, a commit timeline, and an overall summary with percentiles,
// duration buckets, dropped-frame counts, and expensive-commit clusters.
package analysis

// Analysis thresholds. The frame budget is the 60fps allotment; a commit
// strictly over it is a dropped frame. Clusters are runs of at least
// ClusterMinSize consecutive commits each over ClusterThresholdMS.
const (
	FrameBudgetMS          = 16.67
	ClusterThresholdMS     = 10.0
	ClusterMinSize         = 3
	TopComponentsPerCommit = 5
)

// ComponentStats accumulates render timings for one fiber over a trace.
// MaxSelfTime <= TotalSelfTime holds whenever RenderCount > 0; the zero
// value (no renders, zero durations) is the consistent initial state.
type ComponentStats struct {
	Name               string  `json:"name"`
	FiberID            int64   `json:"fiber_id"`
	RenderCount        int     `json:"render_count"`
	TotalSelfTime      float64 `json:"total_self_ms"`
	MaxSelfTime        float64 `json:"max_self_ms"`
	TotalActualTime    float64 `json:"total_actual_ms"`
	MaxActualTime      float64 `json:"max_actual_ms"`
	CompiledWithForget bool    `json:"compiled_with_forget"`
}

// AvgSelfTime is the mean self time per render, zero when never rendered.
func (c ComponentStats) AvgSelfTime() float64 {
	if c.RenderCount == 0 {
		return 0
	}
	return c.TotalSelfTime / float64(c.RenderCount)
}

// TopComponent is a (name, self time) entry in a commit's hottest-components list.
type TopComponent struct {
	Name     string  `json:"name"`
	SelfTime float64 `json:"self_ms"`
}

// CommitInfo summarizes one commit. Index is the commit's position within
// its own root's commit sequence; indices restart per root.
type CommitInfo struct {
	Index         int            `json:"index"`
	Timestamp     float64        `json:"timestamp"`
	Duration      float64        `json:"duration_ms"`
	PriorityLevel string         `json:"priority_level"`
	NumComponents int            `json:"num_components"`
	TopComponents []TopComponent `json:"top_components"`
}

// ExceedsFrameBudget reports whether the commit is a dropped frame.
func (c CommitInfo) ExceedsFrameBudget() bool {
	return c.Duration > FrameBudgetMS
}
