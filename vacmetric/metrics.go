// Package vacmetric exposes Prometheus collectors for aggregation runs.
package vacmetric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StrategyLabels are vector definitions for per-strategy run metrics.
var StrategyLabels = []string{"strategy"}

var RowsProcessedCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vacstat_rows_processed_total",
		Help: "The total number of vacancy records folded into statistics",
	},
	StrategyLabels,
)

var ChunksCompletedCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vacstat_chunks_completed_total",
		Help: "The total number of chunks aggregated successfully",
	},
	StrategyLabels,
)

var RunningWorkersGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "vacstat_running_workers",
		Help: "The current number of running aggregation workers",
	},
)
