package blast

// Search outcome labels reported to StatsRecorder implementations.
const (
	OutcomeSolved      = "solved"
	OutcomeExhausted   = "exhausted"
	OutcomeInterrupted = "interrupted"
)

// StatsRecorder receives counters from the engine as it runs. The
// metrics package provides a Prometheus-backed implementation.
type StatsRecorder interface {
	SearchStarted()
	Backtrack()
	Activation()
	SearchFinished(outcome string, depth int)
}

// NilStats discards all recordings.
type NilStats struct{}

func (NilStats) SearchStarted()                 {}
func (NilStats) Backtrack()                     {}
func (NilStats) Activation()                    {}
func (NilStats) SearchFinished(_ string, _ int) {}
