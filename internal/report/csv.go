// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/elastic/renderlens/internal/analysis"
)

// WriteComponentsCSV dumps the component table, hottest first.
func WriteComponentsCSV(w io.Writer, res *analysis.Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"component", "fiber_id", "renders", "total_self_ms", "avg_self_ms",
		"max_self_ms", "total_actual_ms", "max_actual_ms", "compiled_with_forget",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range res.ComponentsBySelfTime() {
		record := []string{
			c.Name,
			strconv.FormatInt(c.FiberID, 10),
			strconv.Itoa(c.RenderCount),
			formatMS(c.TotalSelfTime),
			formatMS(c.AvgSelfTime()),
			formatMS(c.MaxSelfTime),
			formatMS(c.TotalActualTime),
			formatMS(c.MaxActualTime),
			strconv.FormatBool(c.CompiledWithForget),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCommitsCSV dumps the commit timeline in aggregator order.
func WriteCommitsCSV(w io.Writer, res *analysis.Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"commit_index", "timestamp", "duration_ms", "priority",
		"num_components", "exceeds_frame_budget", "top_component", "top_self_ms",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range res.Commits {
		topName, topSelf := "", 0.0
		if len(c.TopComponents) > 0 {
			topName = c.TopComponents[0].Name
			topSelf = c.TopComponents[0].SelfTime
		}
		record := []string{
			strconv.Itoa(c.Index),
			formatMS(c.Timestamp),
			formatMS(c.Duration),
			c.PriorityLevel,
			strconv.Itoa(c.NumComponents),
			strconv.FormatBool(c.ExceedsFrameBudget()),
			topName,
			formatMS(topSelf),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatMS(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
