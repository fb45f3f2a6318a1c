package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeLabel partitions blast_searches_total by terminal
	// search outcome: solved, exhausted or interrupted.
	OutcomeLabel = "outcome"
)

// To add new metrics:
// 1. Register the collector in Register() below.
// 2. Emit updates from Recorder (or elsewhere instead).
var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blast_searches_total",
			Help: "Number of completed proof searches, by outcome",
		},
		[]string{OutcomeLabel},
	)

	backtracksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blast_backtracks_total",
			Help: "Number of dead ends recovered through the choice-point stack",
		},
	)

	activationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blast_hypothesis_activations_total",
			Help: "Number of hypotheses flipped from pending to active",
		},
	)

	proofDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blast_proof_depth",
			Help:    "Proof depth observed at search completion",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

// Register registers every blast collector with r.
func Register(r prometheus.Registerer) {
	r.MustRegister(
		searchesTotal,
		backtracksTotal,
		activationsTotal,
		proofDepth,
	)
}

// Recorder emits engine counters to the collectors above. It
// satisfies the engine's StatsRecorder interface.
type Recorder struct{}

func (Recorder) SearchStarted() {
}

func (Recorder) Backtrack() {
	backtracksTotal.Inc()
}

func (Recorder) Activation() {
	activationsTotal.Inc()
}

func (Recorder) SearchFinished(outcome string, depth int) {
	searchesTotal.WithLabelValues(outcome).Inc()
	proofDepth.Observe(float64(depth))
}
