// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"sort"

	"github.com/elastic/renderlens/internal/trace"
)

// Result is the full single-session analysis of one trace: the component
// table, the commit timeline in source order (roots concatenated in
// iteration order), the overall summary, and normalization diagnostics.
// It is a derived view, recomputed from the raw trace on every call.
type Result struct {
	Overall     Overall
	Components  map[int64]*ComponentStats
	Commits     []CommitInfo
	Diagnostics trace.Diagnostics
}

// ComponentsBySelfTime returns the component table sorted by total self
// time descending, with fiber identity as a deterministic tie-break.
func (r *Result) ComponentsBySelfTime() []*ComponentStats {
	return r.sortedComponents(func(a, b *ComponentStats) bool {
		if a.TotalSelfTime != b.TotalSelfTime {
			return a.TotalSelfTime > b.TotalSelfTime
		}
		return a.FiberID < b.FiberID
	})
}

// ComponentsByRenderCount returns the component table sorted by render
// count descending, with fiber identity as a deterministic tie-break.
func (r *Result) ComponentsByRenderCount() []*ComponentStats {
	return r.sortedComponents(func(a, b *ComponentStats) bool {
		if a.RenderCount != b.RenderCount {
			return a.RenderCount > b.RenderCount
		}
		return a.FiberID < b.FiberID
	})
}

func (r *Result) sortedComponents(less func(a, b *ComponentStats) bool) []*ComponentStats {
	out := make([]*ComponentStats, 0, len(r.Components))
	for _, c := range r.Components {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Analyze walks every commit of every root and produces the session Result.
func Analyze(doc *trace.Document) *Result {
	res := &Result{Components: make(map[int64]*ComponentStats)}
	snapshots := trace.BuildSnapshotIndex(doc, &res.Diagnostics)

	var durations []float64
	var totalDuration float64

	for _, root := range doc.Roots {
		for ci, commit := range root.Commits {
			selfDurations := trace.Pairs(commit.FiberSelfDurations, &res.Diagnostics)
			actualDurations := trace.Pairs(commit.FiberActualDurations, &res.Diagnostics)

			var commitDuration float64
			var commitComponents []TopComponent

			for _, pair := range selfDurations {
				dur := pair.Float()

				comp, ok := res.Components[pair.FiberID]
				if !ok {
					comp = &ComponentStats{
						Name:               snapshots.Name(pair.FiberID),
						FiberID:            pair.FiberID,
						CompiledWithForget: snapshots.Compiled(pair.FiberID),
					}
					res.Components[pair.FiberID] = comp
				}

				if dur > 0 {
					comp.RenderCount++
					comp.TotalSelfTime += dur
					if dur > comp.MaxSelfTime {
						comp.MaxSelfTime = dur
					}
					commitComponents = append(commitComponents, TopComponent{Name: comp.Name, SelfTime: dur})
				}

				// Zero and negative entries still count toward the commit total.
				commitDuration += dur
			}

			// Inclusive times only accrue to fibers already seen in a
			// self-durations map; actual-only fibers are ignored.
			for _, pair := range actualDurations {
				comp, ok := res.Components[pair.FiberID]
				if !ok {
					continue
				}
				dur := pair.Float()
				comp.TotalActualTime += dur
				if dur > comp.MaxActualTime {
					comp.MaxActualTime = dur
				}
			}

			totalDuration += commitDuration
			durations = append(durations, commitDuration)

			// Stable sort keeps first-encounter order for equal self times.
			sort.SliceStable(commitComponents, func(i, j int) bool {
				return commitComponents[i].SelfTime > commitComponents[j].SelfTime
			})
			top := commitComponents
			if len(top) > TopComponentsPerCommit {
				top = top[:TopComponentsPerCommit]
			}

			res.Commits = append(res.Commits, CommitInfo{
				Index:         ci,
				Timestamp:     commit.Timestamp,
				Duration:      commitDuration,
				PriorityLevel: commit.Priority(),
				NumComponents: len(commitComponents),
				TopComponents: top,
			})
		}
	}

	res.Overall = buildOverall(durations, totalDuration, res.Components, res.Commits)
	return res
}
