// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package analysis

// DetectClusters scans the commit timeline in aggregator order and emits
// every maximal run of at least ClusterMinSize consecutive commits whose
// duration exceeds ClusterThresholdMS. Shorter runs are discarded; a
// qualifying run at the end of the timeline is flushed after the scan.
func DetectClusters(commits []CommitInfo) []Cluster {
	var clusters []Cluster
	var run []CommitInfo

	flush := func() {
		if len(run) >= ClusterMinSize {
			clusters = append(clusters, makeCluster(run))
		}
		run = run[:0]
	}

	for _, commit := range commits {
		if commit.Duration > ClusterThresholdMS {
			run = append(run, commit)
			continue
		}
		flush()
	}
	flush()

	return clusters
}

func makeCluster(run []CommitInfo) Cluster {
	var total float64
	for _, c := range run {
		total += c.Duration
	}
	return Cluster{
		StartCommit: run[0].Index,
		EndCommit:   run[len(run)-1].Index,
		Size:        len(run),
		TotalMS:     round2(total),
		AvgMS:       round2(total / float64(len(run))),
	}
}
