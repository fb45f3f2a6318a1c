package blast

import (
	"fmt"
	"io"
)

// SearchPosition is a read-only view of the search offered to tracers
// at each backtrack and terminal transition.
type SearchPosition interface {
	// Depth returns the current proof depth.
	Depth() int
	// ChoicePoints returns the number of live choice points in the
	// current scope.
	ChoicePoints() int
	// Outstanding returns the number of unresolved proof steps
	// belonging to the current scope.
	Outstanding() int
}

// Tracer instances receive search positions as the engine explores.
// Tracing has no semantic effect on the search.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer discards all trace calls.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

// LoggingTracer writes a short description of each traced position to
// its Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\ndepth: %d\nchoice points: %d\noutstanding steps: %d\n", p.Depth(), p.ChoicePoints(), p.Outstanding())
}
