package blast

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// A Hook runs at a fixed point of the hypothesis activation protocol.
// Pre-activation hooks returning Solved or Failed decide the outcome
// on their own and keep the hypothesis pending; any other result lets
// activation proceed.
type Hook func(s *Search, id HypothesisID) ActionResult

// Search drives a depth-bounded DFS over a goal state. One Search
// owns one State and one choice-point stack; Run may be re-entered
// recursively, with each invocation scoping its own bookkeeping so
// that cleanup never disturbs an enclosing call.
type Search struct {
	state           State
	cps             ChoicePointStack
	tracer          Tracer
	log             *logrus.Logger
	stats           StatsRecorder
	pre, post       Hook
	maxDepth        int
	showFailure     bool
	checkInvariants bool
}

// DefaultMaxDepth bounds searches that do not configure their own
// limit.
const DefaultMaxDepth = 128

// New returns a Search over the configured goal state. WithState is
// mandatory; all other options have working defaults.
func New(options ...Option) (*Search, error) {
	s := Search{maxDepth: DefaultMaxDepth}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	if s.state == nil {
		return nil, fmt.Errorf("no goal state provided")
	}
	return &s, nil
}

type Option func(s *Search) error

// WithState sets the goal state the search operates on.
func WithState(state State) Option {
	return func(s *Search) error {
		s.state = state
		return nil
	}
}

// WithMaxDepth bounds the proof depth. Exceeding the bound is treated
// exactly like an ordinary dead end: remaining choice points at the
// same depth are still tried.
func WithMaxDepth(depth int) Option {
	return func(s *Search) error {
		if depth < 0 {
			return fmt.Errorf("negative max depth %d", depth)
		}
		s.maxDepth = depth
		return nil
	}
}

// WithTracer directs backtrack and terminal transitions to t.
func WithTracer(t Tracer) Option {
	return func(s *Search) error {
		s.tracer = t
		return nil
	}
}

// WithLogger sets the diagnostic channel. The default logger discards
// everything.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Search) error {
		s.log = log
		return nil
	}
}

// WithStatsRecorder directs engine counters to r.
func WithStatsRecorder(r StatsRecorder) Option {
	return func(s *Search) error {
		s.stats = r
		return nil
	}
}

// WithPreActivation installs the hook run before a selected
// hypothesis is marked active.
func WithPreActivation(h Hook) Option {
	return func(s *Search) error {
		s.pre = h
		return nil
	}
}

// WithPostActivation installs the hook run after a hypothesis has
// been marked active.
func WithPostActivation(h Hook) Option {
	return func(s *Search) error {
		s.post = h
		return nil
	}
}

// WithShowFailure retains the final goal state inside the
// ExhaustedError returned by Run, for diagnostic display.
func WithShowFailure(show bool) Option {
	return func(s *Search) error {
		s.showFailure = show
		return nil
	}
}

// WithInvariantChecks consults State.CheckInvariant once per loop
// iteration. A violation panics: it marks a defective Action or State
// implementation, not a recoverable condition.
func WithInvariantChecks(check bool) Option {
	return func(s *Search) error {
		s.checkInvariants = check
		return nil
	}
}

var defaults = []Option{
	func(s *Search) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
	func(s *Search) error {
		if s.stats == nil {
			s.stats = NilStats{}
		}
		return nil
	},
	func(s *Search) error {
		if s.log == nil {
			log := logrus.New()
			log.SetOutput(io.Discard)
			s.log = log
		}
		return nil
	},
	func(s *Search) error {
		if s.pre == nil {
			s.pre = func(*Search, HypothesisID) ActionResult { return NewBranch() }
		}
		if s.post == nil {
			s.post = func(*Search, HypothesisID) ActionResult { return NewBranch() }
		}
		return nil
	},
}

// State returns the goal state the search operates on.
func (s *Search) State() State {
	return s.state
}

// ChoicePoints returns the choice-point stack shared by every scope
// of this search. Actions push their untried alternatives here.
func (s *Search) ChoicePoints() *ChoicePointStack {
	return &s.cps
}

// Logger returns the diagnostic channel.
func (s *Search) Logger() *logrus.Logger {
	return s.log
}

// ActivateHypothesis selects and activates one pending hypothesis.
// Ordering is load-bearing: when the pre-activation hook already
// reports Solved or Failed, that result is returned immediately and
// the hypothesis stays pending.
func (s *Search) ActivateHypothesis() ActionResult {
	id, ok := s.state.SelectHypothesisToActivate()
	if !ok {
		return Failed()
	}
	r := s.pre(s, id)
	if r.Kind() == ResultSolved || r.Kind() == ResultFailed {
		return r
	}
	s.state.MarkActive(id)
	s.stats.Activation()
	s.log.WithField("hypothesis", id).Debug("hypothesis activated")
	return s.post(s, id)
}

// Run explores the goal state by repeatedly applying dispatch until a
// proof is found, the scope's alternatives are exhausted, or ctx is
// cancelled. On success the proof is unfolded back to the depth
// recorded at entry. Exhaustion surfaces as ExhaustedError and
// cancellation as ErrInterrupted.
func (s *Search) Run(ctx context.Context, dispatch Action) (Proof, error) {
	scope := s.cps.OpenScope()
	defer scope.Close()
	checkpoint := s.state.ProofSteps().Checkpoint()
	initNumChoices := s.cps.Len()
	initDepth := s.state.ProofDepth()

	s.log.WithField("maxDepth", s.maxDepth).Debug("search started")
	s.stats.SearchStarted()

	r := dispatch(s)
	for {
		if err := ctx.Err(); err != nil {
			s.log.WithError(err).Debug("search interrupted")
			s.stats.SearchFinished(OutcomeInterrupted, s.state.ProofDepth())
			return nil, ErrInterrupted
		}
		if s.checkInvariants {
			if err := s.state.CheckInvariant(); err != nil {
				panic(fmt.Sprintf("goal state invariant violated: %s", err))
			}
		}
		if s.state.ProofDepth() > s.maxDepth {
			s.log.Debug("maximum search depth reached")
			r = Failed()
		}
		switch r.Kind() {
		case ResultFailed:
			s.tracer.Trace(s.position(checkpoint))
			s.stats.Backtrack()
			r = s.cps.NextChoicePoint(initNumChoices)
			if r.Kind() == ResultFailed {
				// All choice points in this scope failed.
				s.log.Debug("proof not found, no choice points left")
				s.stats.SearchFinished(OutcomeExhausted, s.state.ProofDepth())
				err := ExhaustedError{}
				if s.showFailure {
					err.State = s.state
				}
				return nil, err
			}
		case ResultSolved:
			r = s.nextBranch(r.Proof(), checkpoint)
			if r.Kind() == ResultSolved {
				// All branches opened in this scope are closed.
				s.log.Debug("proof found")
				s.tracer.Trace(s.position(checkpoint))
				s.stats.SearchFinished(OutcomeSolved, s.state.ProofDepth())
				return s.state.Unfold(r.Proof(), initDepth), nil
			}
		case ResultNewBranch:
			r = dispatch(s)
		}
	}
}

// nextBranch propagates a candidate proof through the proof steps
// pushed since the checkpoint, in strict LIFO order. Steps belonging
// to enclosing scopes are never touched.
func (s *Search) nextBranch(proof Proof, checkpoint Checkpoint) ActionResult {
	steps := s.state.ProofSteps()
	for steps.HasNewSteps(checkpoint) {
		step := steps.Top()
		r := step.Resolve(s.state.Unfold(proof, step.Depth()))
		switch r.Kind() {
		case ResultFailed:
			s.log.Debug("next-branch failed")
			return r
		case ResultSolved:
			proof = r.Proof()
			steps.Pop()
		case ResultNewBranch:
			// A live sub-goal was opened; it must be solved
			// before any more steps can resolve.
			return r
		}
	}
	return Solved(proof)
}

type searchPosition struct {
	depth, choices, outstanding int
}

func (p searchPosition) Depth() int        { return p.depth }
func (p searchPosition) ChoicePoints() int { return p.choices }
func (p searchPosition) Outstanding() int  { return p.outstanding }

func (s *Search) position(checkpoint Checkpoint) SearchPosition {
	return searchPosition{
		depth:       s.state.ProofDepth(),
		choices:     s.cps.Len(),
		outstanding: s.state.ProofSteps().Len() - int(checkpoint),
	}
}
