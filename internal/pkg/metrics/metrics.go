package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsDropped counts source rows discarded during cleaning. Dropped rows
	// are not an error, but operators should be able to see them.
	RowsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "covidash_rows_dropped_total",
		Help: "Source rows discarded during cleaning, by source.",
	}, []string{"source"})

	SnapshotLoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "covidash_snapshot_load_seconds",
		Help:    "Wall time spent loading and aggregating one snapshot.",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "covidash_snapshot_loads_total",
		Help: "Number of snapshot computations (cache misses and reloads).",
	})
)
