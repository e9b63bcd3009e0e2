// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elastic/renderlens/internal/analysis"
	"github.com/elastic/renderlens/internal/compare"
)

const (
	compareWidth = 78
	hotNewMS     = 10.0
	summaryTopN  = 15
)

// RenderComparison writes the human-readable before/after report.
func RenderComparison(w io.Writer, cmp *compare.Comparison, beforeName, afterName string, topN int, styles Styles) {
	banner := strings.Repeat("=", compareWidth)
	fmt.Fprintln(w, styles.Title.Render(banner))
	fmt.Fprintln(w, styles.Title.Render("PROFILING COMPARISON: BEFORE vs AFTER"))
	fmt.Fprintln(w, styles.Title.Render(banner))
	fmt.Fprintf(w, "  Before: %s\n", beforeName)
	fmt.Fprintf(w, "  After:  %s\n", afterName)

	renderMetricDeltas(w, cmp.Metrics, styles)
	renderBucketDeltas(w, cmp.Before, cmp.After, styles)
	renderComponentChanges(w, cmp.Rows, topN, styles)
	renderEliminated(w, cmp.Rows, styles)
	renderNewHot(w, cmp.Rows, styles)
	fmt.Fprintln(w)
}

func compareSection(w io.Writer, styles Styles, title string) {
	pad := compareWidth - len(title)
	if pad < 2 {
		pad = 2
	}
	left := pad / 2
	line := strings.Repeat("=", left) + title + strings.Repeat("=", pad-left)
	fmt.Fprintf(w, "\n%s\n", styles.Section.Render(line))
}

func renderStatus(status compare.Status, styles Styles) string {
	switch status {
	case compare.StatusImproved, compare.StatusNew:
		return styles.Improved.Render(string(status))
	case compare.StatusRegressed, compare.StatusEliminated:
		return styles.Regressed.Render(string(status))
	case compare.StatusSame:
		return styles.Muted.Render(string(status))
	default:
		return ""
	}
}

func renderMetricDeltas(w io.Writer, metrics []compare.MetricDelta, styles Styles) {
	compareSection(w, styles, "OVERALL STATS")
	tbl := newTable("lrrrl", "Metric", "Before", "After", "Change", "Status")
	for _, m := range metrics {
		change := "—"
		if m.Defined {
			change = fmt.Sprintf("%+.1f%%", m.ChangePct)
		}
		tbl.AddRow(m.Label, formatMetric(m.Before, m), formatMetric(m.After, m), change, renderStatus(m.Status, styles))
	}
	tbl.Render(w)
}

func formatMetric(v float64, m compare.MetricDelta) string {
	if m.Integer {
		return fmt.Sprintf("%d%s", int64(v), m.Unit)
	}
	return fmt.Sprintf("%.2f%s", v, m.Unit)
}

func renderBucketDeltas(w io.Writer, before, after analysis.Overall, styles Styles) {
	compareSection(w, styles, "COMMIT DURATION DISTRIBUTION")
	tbl := newTable("lrrl", "Bucket", "Before", "After", "Change")
	for i, label := range analysis.BucketLabels {
		bc, ac := before.DurationBuckets[i], after.DurationBuckets[i]
		bpct, apct := 0.0, 0.0
		if before.TotalCommits > 0 {
			bpct = float64(bc) / float64(before.TotalCommits) * 100
		}
		if after.TotalCommits > 0 {
			apct = float64(ac) / float64(after.TotalCommits) * 100
		}
		tbl.AddRow(
			label,
			fmt.Sprintf("%d (%.1f%%)", bc, bpct),
			fmt.Sprintf("%d (%.1f%%)", ac, apct),
			fmt.Sprintf("%+.1fpp", apct-bpct),
		)
	}
	tbl.Render(w)
}

func renderComponentChanges(w io.Writer, rows []compare.Row, topN int, styles Styles) {
	compareSection(w, styles, "COMPONENT CHANGES (by self-time)")
	nameWidth := nameColumnWidth(55)
	tbl := newTable("lrrrrrrl", "Component", "B.Renders", "A.Renders", "R.Change",
		"B.Time", "A.Time", "T.Change", "Status")
	for i, row := range rows {
		if i >= topN {
			break
		}
		tbl.AddRow(
			truncate(row.Name, nameWidth),
			fmt.Sprintf("%d", row.BeforeRenders),
			fmt.Sprintf("%d", row.AfterRenders),
			formatDelta(row.RenderDeltaPct, row.RenderDeltaDefined, row.AfterRenders > 0),
			fmt.Sprintf("%.1f", row.BeforeSelfMS),
			fmt.Sprintf("%.1f", row.AfterSelfMS),
			formatDelta(row.TimeDeltaPct, row.TimeDeltaDefined, row.AfterSelfMS > 0),
			renderStatus(row.Status, styles),
		)
	}
	tbl.Render(w)
}

// formatDelta renders a change percentage, NEW for values that only exist
// on the after side, and an em dash when absent on both sides.
func formatDelta(pct float64, defined, afterPresent bool) string {
	switch {
	case defined:
		return fmt.Sprintf("%+.0f%%", pct)
	case afterPresent:
		return "NEW"
	default:
		return "—"
	}
}

func renderEliminated(w io.Writer, rows []compare.Row, styles Styles) {
	var eliminated []compare.Row
	for _, row := range rows {
		if row.Status == compare.StatusEliminated {
			eliminated = append(eliminated, row)
		}
	}
	if len(eliminated) == 0 {
		return
	}
	compareSection(w, styles, "ELIMINATED COMPONENTS (rendered before, zero after)")
	sort.SliceStable(eliminated, func(i, j int) bool {
		return eliminated[i].BeforeSelfMS > eliminated[j].BeforeSelfMS
	})
	if len(eliminated) > summaryTopN {
		eliminated = eliminated[:summaryTopN]
	}
	for _, row := range eliminated {
		fmt.Fprintf(w, "  %s: was %d renders, %.1fms total\n", row.Name, row.BeforeRenders, row.BeforeSelfMS)
	}
}

func renderNewHot(w io.Writer, rows []compare.Row, styles Styles) {
	var hot []compare.Row
	for _, row := range rows {
		if row.BeforeRenders == 0 && row.AfterSelfMS > hotNewMS {
			hot = append(hot, row)
		}
	}
	if len(hot) == 0 {
		return
	}
	compareSection(w, styles, "NEW HOT COMPONENTS (not in before, >10ms)")
	sort.SliceStable(hot, func(i, j int) bool {
		return hot[i].AfterSelfMS > hot[j].AfterSelfMS
	})
	if len(hot) > summaryTopN {
		hot = hot[:summaryTopN]
	}
	for _, row := range hot {
		fmt.Fprintf(w, "  %s: %d renders, %.1fms total\n", row.Name, row.AfterRenders, row.AfterSelfMS)
	}
}
