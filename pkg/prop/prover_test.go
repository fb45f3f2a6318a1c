package prop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tactic-framework/blast/pkg/blast"
)

type sequent struct {
	Hypotheses []string
	Goal       string
}

func (s sequent) parse(t *testing.T) ([]*Formula, *Formula) {
	t.Helper()
	goal, err := Parse(s.Goal)
	require.NoError(t, err)
	hypotheses := make([]*Formula, 0, len(s.Hypotheses))
	for _, h := range s.Hypotheses {
		f, err := Parse(h)
		require.NoError(t, err)
		hypotheses = append(hypotheses, f)
	}
	return hypotheses, goal
}

func TestProveConstructive(t *testing.T) {
	for _, tt := range []sequent{
		{Goal: "true"},
		{Goal: "p -> p"},
		{Goal: "p -> q -> p"},
		{Goal: "false -> p"},
		{Goal: "q -> p | q"},
		{Goal: "p & q -> q & p"},
		{Goal: "p & q -> p | r"},
		{Goal: "(p -> q) -> (q -> r) -> p -> r"},
		{Hypotheses: []string{"p"}, Goal: "p"},
		{Hypotheses: []string{"p", "p -> q"}, Goal: "q"},
		{Hypotheses: []string{"p -> q", "p"}, Goal: "q"},
		{Hypotheses: []string{"p | q", "p -> r", "q -> r"}, Goal: "r"},
		{Hypotheses: []string{"p & (q | r)"}, Goal: "p & q | p & r"},
		{Hypotheses: []string{"p", "~p"}, Goal: "q"},
	} {
		t.Run(tt.Goal, func(t *testing.T) {
			hypotheses, goal := tt.parse(t)
			prover := Prover{}

			proof, err := prover.Prove(context.Background(), hypotheses, goal)

			require.NoError(t, err)
			assert.True(t, proof.Conclusion().Equal(goal))
			assert.NoError(t, Check(proof, hypotheses), "produced certificate:\n%s", proof)
		})
	}
}

func TestProveClassicalOnly(t *testing.T) {
	for _, tt := range []sequent{
		{Goal: "p | ~p"},
		{Goal: "((p -> q) -> p) -> p"},
		{Goal: "~~p -> p"},
		{Hypotheses: []string{"~(p | q)"}, Goal: "~p & ~q"},
	} {
		t.Run(tt.Goal, func(t *testing.T) {
			hypotheses, goal := tt.parse(t)

			constructive := Prover{}
			_, err := constructive.Prove(context.Background(), hypotheses, goal)
			require.True(t, blast.IsExhausted(err), "constructive search must exhaust, got %v", err)

			classical := Prover{Classical: true}
			proof, err := classical.Prove(context.Background(), hypotheses, goal)
			require.NoError(t, err)
			assert.True(t, proof.Conclusion().Equal(goal))
			assert.NoError(t, Check(proof, hypotheses), "produced certificate:\n%s", proof)
		})
	}
}

func TestProveNonTheorems(t *testing.T) {
	for _, tt := range []sequent{
		{Goal: "p"},
		{Goal: "p -> q"},
		{Goal: "false"},
		{Hypotheses: []string{"p | q"}, Goal: "p"},
		{Hypotheses: []string{"p -> q", "q"}, Goal: "p"},
	} {
		t.Run(tt.Goal, func(t *testing.T) {
			hypotheses, goal := tt.parse(t)

			for _, classical := range []bool{false, true} {
				prover := Prover{Classical: classical}
				_, err := prover.Prove(context.Background(), hypotheses, goal)
				assert.True(t, blast.IsExhausted(err), "classical=%v: got %v", classical, err)
			}
		})
	}
}

func TestProveRespectsDepthBound(t *testing.T) {
	goal, err := Parse("p -> q -> p")
	require.NoError(t, err)

	shallow := Prover{MaxDepth: 1}
	_, err = shallow.Prove(context.Background(), nil, goal)
	assert.True(t, blast.IsExhausted(err))

	deep := Prover{MaxDepth: 2}
	proof, err := deep.Prove(context.Background(), nil, goal)
	require.NoError(t, err)
	assert.NoError(t, Check(proof, nil))
}

func TestProveInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	goal, err := Parse("p -> p")
	require.NoError(t, err)

	prover := Prover{}
	_, err = prover.Prove(ctx, nil, goal)
	assert.ErrorIs(t, err, blast.ErrInterrupted)
}

func TestProveShowFailure(t *testing.T) {
	goal, err := Parse("p")
	require.NoError(t, err)

	prover := Prover{ShowFailure: true}
	_, err = prover.Prove(context.Background(), []*Formula{Atom("q")}, goal)

	var exhausted blast.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.NotNil(t, exhausted.State)
	assert.Contains(t, exhausted.Error(), "|- p")
}

func TestProveWithInvariantChecks(t *testing.T) {
	hypotheses := []*Formula{Or(Atom("p"), Atom("q")), Implies(Atom("p"), Atom("r")), Implies(Atom("q"), Atom("r"))}
	goal := Atom("r")

	prover := Prover{CheckInvariants: true}
	proof, err := prover.Prove(context.Background(), hypotheses, goal)

	require.NoError(t, err)
	assert.NoError(t, Check(proof, hypotheses))
}
