// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"testing"
)

func commitsWithDurations(durations ...float64) []CommitInfo {
	commits := make([]CommitInfo, len(durations))
	for i, d := range durations {
		commits[i] = CommitInfo{Index: i, Duration: d}
	}
	return commits
}

func TestDetectClusters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		durations []float64
		want      []Cluster
	}{
		{
			name:      "no_commits",
			durations: nil,
			want:      nil,
		},
		{
			name:      "all_cheap",
			durations: []float64{1, 2, 3, 4},
			want:      nil,
		},
		{
			name:      "run_of_two_discarded",
			durations: []float64{11, 12, 1, 11, 12, 1},
			want:      nil,
		},
		{
			name:      "run_of_three_emitted",
			durations: []float64{1, 11, 12, 13, 1},
			want: []Cluster{
				{StartCommit: 1, EndCommit: 3, Size: 3, TotalMS: 36, AvgMS: 12},
			},
		},
		{
			name:      "trailing_run_flushed",
			durations: []float64{1, 20, 20, 20},
			want: []Cluster{
				{StartCommit: 1, EndCommit: 3, Size: 3, TotalMS: 60, AvgMS: 20},
			},
		},
		{
			name:      "threshold_is_strict",
			durations: []float64{10, 10, 10},
			want:      nil,
		},
		{
			name:      "two_separate_clusters",
			durations: []float64{11, 11, 11, 1, 15, 15, 15, 15},
			want: []Cluster{
				{StartCommit: 0, EndCommit: 2, Size: 3, TotalMS: 33, AvgMS: 11},
				{StartCommit: 4, EndCommit: 7, Size: 4, TotalMS: 60, AvgMS: 15},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DetectClusters(commitsWithDurations(tt.durations...))
			if len(got) != len(tt.want) {
				t.Fatalf("len(clusters) = %d, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("clusters[%d] = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

// Every emitted cluster must satisfy size >= 3 with all members above the
// threshold, and be maximal: the commits adjacent to its edges fail the test.
func TestDetectClusters_Maximality(t *testing.T) {
	t.Parallel()

	durations := []float64{12, 12, 12, 12, 2, 30, 30, 30, 9, 11, 11}
	commits := commitsWithDurations(durations...)
	clusters := DetectClusters(commits)

	if len(clusters) != 2 {
		t.Fatalf("len(clusters) = %d, want 2", len(clusters))
	}
	for _, cl := range clusters {
		if cl.Size < ClusterMinSize {
			t.Errorf("cluster %+v smaller than min size", cl)
		}
		for i := cl.StartCommit; i <= cl.EndCommit; i++ {
			if commits[i].Duration <= ClusterThresholdMS {
				t.Errorf("cluster member %d has duration %v, not above threshold", i, commits[i].Duration)
			}
		}
		if cl.StartCommit > 0 && commits[cl.StartCommit-1].Duration > ClusterThresholdMS {
			t.Errorf("cluster %+v is not left-maximal", cl)
		}
		if cl.EndCommit < len(commits)-1 && commits[cl.EndCommit+1].Duration > ClusterThresholdMS {
			t.Errorf("cluster %+v is not right-maximal", cl)
		}
	}
}
