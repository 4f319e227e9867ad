// Package metrics defines the Prometheus collectors for the mess
// ledger backend. Collectors register themselves on the default
// registry; cmd/server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsWritten counts ledger-affecting writes by record kind
	// (meal, deposit, meal_cost, other_cost).
	RecordsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "messmate",
		Name:      "records_written_total",
		Help:      "Number of ledger records written, by kind.",
	}, []string{"kind"})

	// LedgerComputations counts settlement computations by result kind
	// (summary, balances).
	LedgerComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "messmate",
		Name:      "ledger_computations_total",
		Help:      "Number of ledger computations run, by kind.",
	}, []string{"kind"})

	// LedgerComputeDuration observes wall time of a full settlement
	// computation including record fetches.
	LedgerComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "messmate",
		Name:      "ledger_compute_duration_seconds",
		Help:      "Duration of ledger computations including record fetches.",
		Buckets:   prometheus.DefBuckets,
	})
)
