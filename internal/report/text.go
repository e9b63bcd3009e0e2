// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elastic/renderlens/internal/analysis"
)

const (
	reportWidth    = 70
	histogramWidth = 30
	expensiveTopN  = 20
)

// RenderAnalysis writes the human-readable single-session report.
func RenderAnalysis(w io.Writer, res *analysis.Result, topN int, styles Styles) {
	banner := strings.Repeat("=", reportWidth)
	fmt.Fprintln(w, styles.Title.Render(banner))
	fmt.Fprintln(w, styles.Title.Render("REACT PROFILER ANALYSIS"))
	fmt.Fprintln(w, styles.Title.Render(banner))

	renderOverall(w, res.Overall, styles)
	renderDistribution(w, res.Overall, styles)
	renderTopBySelfTime(w, res, topN, styles)
	renderTopByRenderCount(w, res, topN, styles)
	renderExpensiveCommits(w, res, styles)
	renderClusters(w, res.Overall.Clusters, styles)
	renderDiagnostics(w, res, styles)
	fmt.Fprintln(w)
}

// sectionHeader mirrors the ====== TITLE ====== banner of the report.
func sectionHeader(w io.Writer, styles Styles, title string) {
	pad := reportWidth - len(title)
	if pad < 2 {
		pad = 2
	}
	left := pad / 2
	right := pad - left
	line := strings.Repeat("=", left) + title + strings.Repeat("=", right)
	fmt.Fprintf(w, "\n%s\n", styles.Section.Render(line))
}

func renderOverall(w io.Writer, o analysis.Overall, styles Styles) {
	sectionHeader(w, styles, "OVERALL STATS")
	fmt.Fprintf(w, "  Total commits:       %d\n", o.TotalCommits)
	fmt.Fprintf(w, "  Total render time:   %.2f ms\n", o.TotalDurationMS)
	fmt.Fprintf(w, "  Avg commit:          %.2f ms\n", o.AvgDurationMS)
	fmt.Fprintf(w, "  Median commit:       %.2f ms\n", o.MedianDurationMS)
	fmt.Fprintf(w, "  P95 commit:          %.2f ms\n", o.P95DurationMS)
	fmt.Fprintf(w, "  P99 commit:          %.2f ms\n", o.P99DurationMS)
	fmt.Fprintf(w, "  Max commit:          %.2f ms\n", o.MaxDurationMS)

	dropped := fmt.Sprintf("%d (%.1f%%)", o.DroppedFrames, o.DroppedPct)
	if o.DroppedFrames > 0 {
		dropped = styles.Regressed.Render(dropped)
	}
	fmt.Fprintf(w, "  Dropped frames:      %s\n", dropped)
	fmt.Fprintf(w, "  Components:          %d\n", o.TotalComponents)
	fmt.Fprintf(w, "  React Compiler:      %d compiled\n", o.CompiledWithForget)
}

func renderDistribution(w io.Writer, o analysis.Overall, styles Styles) {
	sectionHeader(w, styles, "COMMIT DURATION DISTRIBUTION")
	maxCount := 1
	for _, count := range o.DurationBuckets {
		if count > maxCount {
			maxCount = count
		}
	}
	for i, label := range analysis.BucketLabels {
		count := o.DurationBuckets[i]
		pct := 0.0
		if o.TotalCommits > 0 {
			pct = float64(count) / float64(o.TotalCommits) * 100
		}
		bar := strings.Repeat("#", count*histogramWidth/maxCount)
		flag := ""
		if count > 0 && (label == "17-33ms" || label == "34+ms") {
			flag = " " + styles.Warning.Render("!!!")
		}
		fmt.Fprintf(w, "  %7s: %6d (%5.1f%%) %s%s\n", label, count, pct, bar, flag)
	}
}

func renderTopBySelfTime(w io.Writer, res *analysis.Result, topN int, styles Styles) {
	sectionHeader(w, styles, "TOP COMPONENTS BY SELF-TIME")
	nameWidth := nameColumnWidth(45)
	tbl := newTable("lrrrrr", "Component", "Renders", "Total(ms)", "Avg(ms)", "Max(ms)", "Compiler")
	for i, c := range res.ComponentsBySelfTime() {
		if i >= topN {
			break
		}
		compiler := ""
		if c.CompiledWithForget {
			compiler = "yes"
		}
		tbl.AddRow(
			truncate(c.Name, nameWidth),
			fmt.Sprintf("%d", c.RenderCount),
			fmt.Sprintf("%.1f", c.TotalSelfTime),
			fmt.Sprintf("%.2f", c.AvgSelfTime()),
			fmt.Sprintf("%.1f", c.MaxSelfTime),
			compiler,
		)
	}
	tbl.Render(w)
}

func renderTopByRenderCount(w io.Writer, res *analysis.Result, topN int, styles Styles) {
	sectionHeader(w, styles, "TOP COMPONENTS BY RENDER COUNT")
	nameWidth := nameColumnWidth(35)
	tbl := newTable("lrrr", "Component", "Renders", "Total(ms)", "Avg(ms)")
	for i, c := range res.ComponentsByRenderCount() {
		if i >= topN {
			break
		}
		tbl.AddRow(
			truncate(c.Name, nameWidth),
			fmt.Sprintf("%d", c.RenderCount),
			fmt.Sprintf("%.1f", c.TotalSelfTime),
			fmt.Sprintf("%.2f", c.AvgSelfTime()),
		)
	}
	tbl.Render(w)
}

func renderExpensiveCommits(w io.Writer, res *analysis.Result, styles Styles) {
	expensive := append([]analysis.CommitInfo(nil), res.Commits...)
	sort.SliceStable(expensive, func(i, j int) bool {
		return expensive[i].Duration > expensive[j].Duration
	})
	if len(expensive) > expensiveTopN {
		expensive = expensive[:expensiveTopN]
	}
	if len(expensive) == 0 || expensive[0].Duration <= 0 {
		return
	}

	sectionHeader(w, styles, "TOP 20 MOST EXPENSIVE COMMITS")
	nameWidth := nameColumnWidth(45)
	tbl := newTable("rrrll", "Commit#", "Duration(ms)", "Timestamp", "Top Component", "Self(ms)")
	for _, c := range expensive {
		topName, topSelf := "—", 0.0
		if len(c.TopComponents) > 0 {
			topName = c.TopComponents[0].Name
			topSelf = c.TopComponents[0].SelfTime
		}
		duration := fmt.Sprintf("%.1f", c.Duration)
		if c.ExceedsFrameBudget() {
			duration = styles.Regressed.Render(duration)
		}
		tbl.AddRow(
			fmt.Sprintf("%d", c.Index),
			duration,
			fmt.Sprintf("%.0f", c.Timestamp),
			truncate(topName, nameWidth),
			fmt.Sprintf("%.1f", topSelf),
		)
	}
	tbl.Render(w)
}

func renderClusters(w io.Writer, clusters []analysis.Cluster, styles Styles) {
	if len(clusters) == 0 {
		return
	}
	sectionHeader(w, styles, "EXPENSIVE COMMIT CLUSTERS (3+ consecutive >10ms)")
	for i, cl := range clusters {
		fmt.Fprintf(w, "  Cluster %d: commits %d-%d (%d commits, %.1fms total, %.1fms avg)\n",
			i+1, cl.StartCommit, cl.EndCommit, cl.Size, cl.TotalMS, cl.AvgMS)
	}
}

func renderDiagnostics(w io.Writer, res *analysis.Result, styles Styles) {
	d := res.Diagnostics
	if d.SkippedEntries == 0 && d.UnparseableKeys == 0 {
		return
	}
	note := fmt.Sprintf("  Note: skipped %d malformed map entries, %d unparseable fiber ids",
		d.SkippedEntries, d.UnparseableKeys)
	fmt.Fprintf(w, "\n%s\n", styles.Muted.Render(note))
}
