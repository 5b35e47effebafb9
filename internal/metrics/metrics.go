// Package metrics registers the Prometheus counters/histograms the engine's
// hosting adapters update around every dispatch, mirroring the
// prometheusUtxostoreCreate-style counters the teranode aerospike store
// keeps next to its batch paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts dispatched operations by function name and
	// outcome status ("OK" or "ERROR").
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "utxoengine_operations_total",
		Help: "Number of UTXO engine operations dispatched, by function and status.",
	}, []string{"function", "status"})

	// DAHSignalsTotal counts each delete-at-height signal the evaluator
	// emits.
	DAHSignalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "utxoengine_dah_signal_total",
		Help: "Number of delete-at-height signals emitted, by signal.",
	}, []string{"signal"})

	// CommitDuration measures the wall-clock duration of each backend call
	// made through pkg/client, from dispatch to returned response.
	CommitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "utxoengine_commit_duration_seconds",
		Help:    "Duration of each backend call made through the client, including the operation and its commit.",
		Buckets: prometheus.DefBuckets,
	})
)
