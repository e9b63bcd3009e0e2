// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// BucketLabels are the fixed duration-distribution buckets, in display order.
var BucketLabels = []string{"0ms", "1ms", "2ms", "3-5ms", "6-10ms", "11-16ms", "17-33ms", "34+ms"}

// bucketBounds are the exclusive upper bounds matching BucketLabels[:7];
// anything at or above the last bound lands in "34+ms".
var bucketBounds = []float64{0.5, 1.5, 2.5, 5.5, 10.5, 16.68, 33.5}

// Buckets holds the count of commits per duration bucket, keyed in
// BucketLabels order.
type Buckets [8]int

// MarshalJSON emits the buckets as an object in fixed label order, matching
// the machine-readable summary format.
func (b Buckets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range BucketLabels {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", label, b[i])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// BucketIndex returns the index into BucketLabels for a commit duration.
// Every duration falls into exactly one bucket.
func BucketIndex(duration float64) int {
	for i, bound := range bucketBounds {
		if duration < bound {
			return i
		}
	}
	return len(bucketBounds)
}

// BucketDurations counts each duration into its bucket.
func BucketDurations(durations []float64) Buckets {
	var b Buckets
	for _, d := range durations {
		b[BucketIndex(d)]++
	}
	return b
}

// Percentile computes the nearest-rank percentile of an ascending-sorted
// series: index floor(p/100*n) clamped to [0, n-1], without interpolation.
// An empty series yields zero.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(p / 100 * float64(n))
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// CountDropped counts commits whose duration strictly exceeds the frame budget.
func CountDropped(durations []float64) int {
	dropped := 0
	for _, d := range durations {
		if d > FrameBudgetMS {
			dropped++
		}
	}
	return dropped
}

// Cluster describes a maximal run of consecutive expensive commits.
// Start and End are commit indices (per-root, as emitted by the aggregator).
type Cluster struct {
	StartCommit int     `json:"start_commit"`
	EndCommit   int     `json:"end_commit"`
	Size        int     `json:"size"`
	TotalMS     float64 `json:"total_ms"`
	AvgMS       float64 `json:"avg_ms"`
}

// Overall is the aggregate view over one trace. Field names follow the
// machine-readable summary format; durations are rounded to 2 decimals.
type Overall struct {
	TotalCommits       int       `json:"total_commits"`
	TotalDurationMS    float64   `json:"total_duration_ms"`
	AvgDurationMS      float64   `json:"avg_duration_ms"`
	MedianDurationMS   float64   `json:"median_duration_ms"`
	MaxDurationMS      float64   `json:"max_duration_ms"`
	P95DurationMS      float64   `json:"p95_duration_ms"`
	P99DurationMS      float64   `json:"p99_duration_ms"`
	DroppedFrames      int       `json:"dropped_frames"`
	DroppedPct         float64   `json:"dropped_pct"`
	TotalComponents    int       `json:"total_components"`
	CompiledWithForget int       `json:"compiled_with_forget"`
	DurationBuckets    Buckets   `json:"duration_buckets"`
	Clusters           []Cluster `json:"clusters"`
}

func buildOverall(durations []float64, totalDuration float64, components map[int64]*ComponentStats, commits []CommitInfo) Overall {
	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)
	n := len(sorted)

	compiled := 0
	for _, c := range components {
		if c.CompiledWithForget {
			compiled++
		}
	}

	o := Overall{
		TotalCommits:       n,
		TotalDurationMS:    round2(totalDuration),
		MedianDurationMS:   round2(Percentile(sorted, 50)),
		P95DurationMS:      round2(Percentile(sorted, 95)),
		P99DurationMS:      round2(Percentile(sorted, 99)),
		DroppedFrames:      CountDropped(sorted),
		TotalComponents:    len(components),
		CompiledWithForget: compiled,
		DurationBuckets:    BucketDurations(sorted),
		Clusters:           DetectClusters(commits),
	}
	if n > 0 {
		o.AvgDurationMS = round2(totalDuration / float64(n))
		o.MaxDurationMS = round2(sorted[n-1])
		o.DroppedPct = round2(float64(o.DroppedFrames) / float64(n) * 100)
	}
	return o
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
