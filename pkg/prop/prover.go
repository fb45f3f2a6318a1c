package prop

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tactic-framework/blast/pkg/blast"
)

// Prover proves propositional sequents with the blast engine. The
// zero value is a working intuitionistic prover with the engine's
// default depth bound.
type Prover struct {
	// MaxDepth bounds the proof depth when positive.
	MaxDepth int
	// Classical falls back to a second search that may close goals
	// with SAT-validated classical steps.
	Classical bool
	// ShowFailure retains the final goal state in exhaustion
	// errors.
	ShowFailure bool
	// CheckInvariants makes the engine consult the goal state's
	// consistency check every iteration.
	CheckInvariants bool
	// Tracer, Logger and Stats are handed through to the engine
	// when non-nil.
	Tracer blast.Tracer
	Logger *logrus.Logger
	Stats  blast.StatsRecorder
}

// Prove searches for a certificate of goal under the hypotheses. The
// constructive strategy runs first; when it exhausts its space and
// the prover is classical, a second strategy with SAT closure is
// tried. Exhaustion and interruption surface as the engine's errors.
func (p *Prover) Prove(ctx context.Context, hypotheses []*Formula, goal *Formula) (*Proof, error) {
	strategy := p.strategy(ctx, hypotheses, goal, false)
	if p.Classical {
		strategy = blast.Or(strategy, p.strategy(ctx, hypotheses, goal, true))
	}
	proof, err := strategy()
	if err != nil {
		return nil, err
	}
	certificate, ok := proof.(*Proof)
	if !ok {
		return nil, fmt.Errorf("search produced a foreign proof %T", proof)
	}
	return certificate, nil
}

// strategy wraps one full search over a fresh goal state.
func (p *Prover) strategy(ctx context.Context, hypotheses []*Formula, goal *Formula, classical bool) blast.Strategy {
	return func() (blast.Proof, error) {
		options := []blast.Option{
			blast.WithState(NewGoalState(hypotheses, goal)),
			blast.WithPreActivation(PreActivation),
			blast.WithPostActivation(PostActivation),
			blast.WithShowFailure(p.ShowFailure),
			blast.WithInvariantChecks(p.CheckInvariants),
		}
		if p.MaxDepth > 0 {
			options = append(options, blast.WithMaxDepth(p.MaxDepth))
		}
		if p.Tracer != nil {
			options = append(options, blast.WithTracer(p.Tracer))
		}
		if p.Logger != nil {
			options = append(options, blast.WithLogger(p.Logger))
		}
		if p.Stats != nil {
			options = append(options, blast.WithStatsRecorder(p.Stats))
		}
		search, err := blast.New(options...)
		if err != nil {
			return nil, err
		}
		return search.Run(ctx, Dispatch(classical))
	}
}
