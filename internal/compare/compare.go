// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

// Package compare matches two independently analyzed profiling sessions
// and classifies per-component regressions and improvements. Components
// are matched by display name: fiber identities are not stable across
// separate capture sessions, so numeric identity never crosses sessions.
package compare

import (
	"sort"
	"strings"

	"github.com/elastic/renderlens/internal/analysis"
	"github.com/elastic/renderlens/internal/trace"
)

// Classification thresholds. A component improved when its self time at
// least halved, regressed when it grew by more than half; overall metrics
// need a 5% move in either direction to leave the ~same band.
const (
	ImprovedFactor  = 0.5
	RegressedFactor = 1.5
	MetricBandPct   = 5.0
)

// Status labels a per-component or per-metric change.
type Status string

const (
	StatusNone       Status = ""
	StatusEliminated Status = "ELIMINATED"
	StatusNew        Status = "new"
	StatusImproved   Status = "improved"
	StatusRegressed  Status = "REGRESSED"
	StatusSame       Status = "~same"
)

// Row is the outer-join result for one component name across two sessions.
// Renders and self times are zero when the name is absent on one side.
// The delta percentages are only meaningful when their Defined flag is set
// (a zero "before" value has no percentage).
type Row struct {
	Name string

	BeforeRenders int
	AfterRenders  int
	BeforeSelfMS  float64
	AfterSelfMS   float64

	RenderDeltaPct     float64
	RenderDeltaDefined bool
	TimeDeltaPct       float64
	TimeDeltaDefined   bool

	Status Status
}

// MetricDelta compares one overall-stats metric across sessions.
type MetricDelta struct {
	Label         string
	Unit          string
	Integer       bool // format as integer rather than 2-decimal float
	LowerIsBetter bool

	Before    float64
	After     float64
	ChangePct float64
	Defined   bool // false when Before == 0, rendered as an em dash
	Status    Status
}

// Comparison is the full cross-session diff.
type Comparison struct {
	Before analysis.Overall `json:"before"`
	After  analysis.Overall `json:"after"`

	Rows    []Row         `json:"-"`
	Metrics []MetricDelta `json:"-"`
}

// Compare joins two session results by component name and computes the
// overall metric deltas. Rows come back ordered by max(before, after)
// self time descending, name ascending on ties.
func Compare(before, after *analysis.Result) *Comparison {
	beforeNames := aggregateByName(before.Components)
	afterNames := aggregateByName(after.Components)

	names := make([]string, 0, len(beforeNames)+len(afterNames))
	seen := make(map[string]bool, len(beforeNames)+len(afterNames))
	for name := range beforeNames {
		names = append(names, name)
		seen[name] = true
	}
	for name := range afterNames {
		if !seen[name] {
			names = append(names, name)
		}
	}

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, makeRow(name, beforeNames[name], afterNames[name]))
	}

	sort.Slice(rows, func(i, j int) bool {
		mi := maxFloat(rows[i].BeforeSelfMS, rows[i].AfterSelfMS)
		mj := maxFloat(rows[j].BeforeSelfMS, rows[j].AfterSelfMS)
		if mi != mj {
			return mi > mj
		}
		return rows[i].Name < rows[j].Name
	})

	return &Comparison{
		Before:  before.Overall,
		After:   after.Overall,
		Rows:    rows,
		Metrics: compareOverall(before.Overall, after.Overall),
	}
}

// aggregateByName merges all stats entries sharing a resolved name; counts
// and totals sum, maxima take the max. Synthesized Unknown# placeholders
// are excluded entirely: an unresolvable identity cannot be matched.
func aggregateByName(components map[int64]*analysis.ComponentStats) map[string]*analysis.ComponentStats {
	byName := make(map[string]*analysis.ComponentStats)
	for _, c := range components {
		if strings.HasPrefix(c.Name, trace.UnknownNamePrefix) {
			continue
		}
		agg, ok := byName[c.Name]
		if !ok {
			agg = &analysis.ComponentStats{
				Name:               c.Name,
				FiberID:            c.FiberID,
				CompiledWithForget: c.CompiledWithForget,
			}
			byName[c.Name] = agg
		}
		agg.RenderCount += c.RenderCount
		agg.TotalSelfTime += c.TotalSelfTime
		agg.TotalActualTime += c.TotalActualTime
		if c.MaxSelfTime > agg.MaxSelfTime {
			agg.MaxSelfTime = c.MaxSelfTime
		}
		if c.MaxActualTime > agg.MaxActualTime {
			agg.MaxActualTime = c.MaxActualTime
		}
	}
	return byName
}

func makeRow(name string, before, after *analysis.ComponentStats) Row {
	row := Row{Name: name}
	if before != nil {
		row.BeforeRenders = before.RenderCount
		row.BeforeSelfMS = before.TotalSelfTime
	}
	if after != nil {
		row.AfterRenders = after.RenderCount
		row.AfterSelfMS = after.TotalSelfTime
	}

	if row.BeforeRenders > 0 {
		row.RenderDeltaPct = float64(row.AfterRenders-row.BeforeRenders) / float64(row.BeforeRenders) * 100
		row.RenderDeltaDefined = true
	}
	if row.BeforeSelfMS > 0 {
		row.TimeDeltaPct = (row.AfterSelfMS - row.BeforeSelfMS) / row.BeforeSelfMS * 100
		row.TimeDeltaDefined = true
	}

	row.Status = classify(row)
	return row
}

// classify applies the status rules in precedence order:
// eliminated, new, improved, regressed.
func classify(row Row) Status {
	switch {
	case row.BeforeRenders > 0 && row.AfterRenders == 0:
		return StatusEliminated
	case row.BeforeRenders == 0 && row.AfterRenders > 0:
		return StatusNew
	case row.BeforeSelfMS > 0 && row.AfterSelfMS < row.BeforeSelfMS*ImprovedFactor:
		return StatusImproved
	case row.BeforeSelfMS > 0 && row.AfterSelfMS > row.BeforeSelfMS*RegressedFactor:
		return StatusRegressed
	default:
		return StatusNone
	}
}

// compareOverall builds the eleven-metric delta table. Duration and
// dropped-frame metrics are lower-is-better and carry a status; counts
// are informational only.
func compareOverall(before, after analysis.Overall) []MetricDelta {
	metrics := []struct {
		label         string
		unit          string
		integer       bool
		lowerIsBetter bool
		get           func(analysis.Overall) float64
	}{
		{"Total commits", "", true, false, func(o analysis.Overall) float64 { return float64(o.TotalCommits) }},
		{"Total render time", "ms", false, false, func(o analysis.Overall) float64 { return o.TotalDurationMS }},
		{"Avg commit", "ms", false, true, func(o analysis.Overall) float64 { return o.AvgDurationMS }},
		{"Median commit", "ms", false, true, func(o analysis.Overall) float64 { return o.MedianDurationMS }},
		{"P95 commit", "ms", false, true, func(o analysis.Overall) float64 { return o.P95DurationMS }},
		{"P99 commit", "ms", false, true, func(o analysis.Overall) float64 { return o.P99DurationMS }},
		{"Max commit", "ms", false, true, func(o analysis.Overall) float64 { return o.MaxDurationMS }},
		{"Dropped frames", "", true, true, func(o analysis.Overall) float64 { return float64(o.DroppedFrames) }},
		{"Dropped %", "%", false, true, func(o analysis.Overall) float64 { return o.DroppedPct }},
		{"Components", "", true, false, func(o analysis.Overall) float64 { return float64(o.TotalComponents) }},
		{"React Compiler", "", true, false, func(o analysis.Overall) float64 { return float64(o.CompiledWithForget) }},
	}

	deltas := make([]MetricDelta, 0, len(metrics))
	for _, m := range metrics {
		d := MetricDelta{
			Label:         m.label,
			Unit:          m.unit,
			Integer:       m.integer,
			LowerIsBetter: m.lowerIsBetter,
			Before:        m.get(before),
			After:         m.get(after),
		}
		if d.Before != 0 {
			d.ChangePct = (d.After - d.Before) / d.Before * 100
			d.Defined = true
			if m.lowerIsBetter {
				switch {
				case d.ChangePct < -MetricBandPct:
					d.Status = StatusImproved
				case d.ChangePct > MetricBandPct:
					d.Status = StatusRegressed
				default:
					d.Status = StatusSame
				}
			}
		}
		deltas = append(deltas, d)
	}
	return deltas
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
