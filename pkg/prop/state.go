package prop

import (
	"fmt"
	"strings"

	"github.com/tactic-framework/blast/pkg/blast"
)

// Hypothesis is one fact available to the search, together with the
// certificate deriving it from the original assumptions.
type Hypothesis struct {
	ID      blast.HypothesisID
	Formula *Formula
	Proof   *Proof
	Active  bool
	Depth   int // proof depth at which the hypothesis was introduced
}

// GoalState is the propositional goal-state collaborator. It holds
// the current target, the hypotheses tagged pending or active, the
// proof depth and the proof-step stack. A GoalState is owned by
// exactly one search at a time; choice points restore it through
// snapshots.
type GoalState struct {
	target *Formula
	hyps   []Hypothesis
	depth  int
	nextID int
	steps  blast.ProofStepStack
}

var _ blast.State = (*GoalState)(nil)

// NewGoalState returns a state proving goal under the given
// hypotheses, all of which start out pending.
func NewGoalState(hypotheses []*Formula, goal *Formula) *GoalState {
	s := &GoalState{target: goal}
	for _, h := range hypotheses {
		s.addHypothesis(h, Assumption(h))
	}
	return s
}

// Target returns the current goal.
func (s *GoalState) Target() *Formula {
	return s.target
}

// Hypotheses returns a copy of the current hypotheses, pending and
// active.
func (s *GoalState) Hypotheses() []Hypothesis {
	out := make([]Hypothesis, len(s.hyps))
	copy(out, s.hyps)
	return out
}

// addHypothesis records f with its derivation at the current depth.
// A formula already present, pending or active, is not added again;
// the existing entry's identifier is returned instead. The dedup
// keeps forward chaining finite.
func (s *GoalState) addHypothesis(f *Formula, proof *Proof) blast.HypothesisID {
	for i := range s.hyps {
		if s.hyps[i].Formula.Equal(f) {
			return s.hyps[i].ID
		}
	}
	id := blast.HypothesisID(fmt.Sprintf("h%d", s.nextID))
	s.nextID++
	s.hyps = append(s.hyps, Hypothesis{
		ID:      id,
		Formula: f,
		Proof:   proof,
		Depth:   s.depth,
	})
	return id
}

func (s *GoalState) find(id blast.HypothesisID) *Hypothesis {
	for i := range s.hyps {
		if s.hyps[i].ID == id {
			return &s.hyps[i]
		}
	}
	return nil
}

// activeProofOf returns the derivation of an active hypothesis equal
// to f, if one exists.
func (s *GoalState) activeProofOf(f *Formula) (*Proof, bool) {
	for i := range s.hyps {
		if s.hyps[i].Active && s.hyps[i].Formula.Equal(f) {
			return s.hyps[i].Proof, true
		}
	}
	return nil, false
}

// truncate discards every hypothesis introduced deeper than depth and
// rewinds the depth counter. Resolved branches call it so that
// branch-local facts never leak into their siblings.
func (s *GoalState) truncate(depth int) {
	kept := s.hyps[:0]
	for _, h := range s.hyps {
		if h.Depth <= depth {
			kept = append(kept, h)
		}
	}
	s.hyps = kept
	s.depth = depth
}

// SelectHypothesisToActivate returns the oldest pending hypothesis.
func (s *GoalState) SelectHypothesisToActivate() (blast.HypothesisID, bool) {
	for i := range s.hyps {
		if !s.hyps[i].Active {
			return s.hyps[i].ID, true
		}
	}
	return "", false
}

// MarkActive flips the identified hypothesis from pending to active.
func (s *GoalState) MarkActive(id blast.HypothesisID) {
	if h := s.find(id); h != nil {
		h.Active = true
	}
}

// ProofDepth returns the current proof depth.
func (s *GoalState) ProofDepth() int {
	return s.depth
}

// ProofSteps returns the state's deferred branch obligations.
func (s *GoalState) ProofSteps() *blast.ProofStepStack {
	return &s.steps
}

// Unfold is the identity for propositional certificates: discharge of
// branch-local assumptions is recorded inside the certificate itself,
// so a proof built at a deeper context is already valid at shallower
// ones.
func (s *GoalState) Unfold(proof blast.Proof, _ int) blast.Proof {
	return proof
}

// CheckInvariant verifies the state's internal consistency: a target
// is installed, the depth counter is sane, hypothesis identifiers are
// unique and no hypothesis claims a depth beyond the current one.
func (s *GoalState) CheckInvariant() error {
	if s.target == nil {
		return fmt.Errorf("no target installed")
	}
	if s.depth < 0 {
		return fmt.Errorf("negative proof depth %d", s.depth)
	}
	seen := make(map[blast.HypothesisID]struct{}, len(s.hyps))
	for _, h := range s.hyps {
		if _, ok := seen[h.ID]; ok {
			return fmt.Errorf("duplicate hypothesis %s", h.ID)
		}
		seen[h.ID] = struct{}{}
		if h.Depth > s.depth {
			return fmt.Errorf("hypothesis %s introduced at depth %d, beyond current depth %d", h.ID, h.Depth, s.depth)
		}
	}
	return nil
}

// String implements fmt.Stringer and renders the state as a sequent,
// for diagnostic display of failed searches.
func (s *GoalState) String() string {
	var b strings.Builder
	for _, h := range s.hyps {
		tag := "pending"
		if h.Active {
			tag = "active"
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", h.ID, tag, h.Formula)
	}
	fmt.Fprintf(&b, "|- %s", s.target)
	return b.String()
}

// snapshot captures everything a choice point needs to rewind the
// state: the target, depth, hypotheses (including activation flags)
// and the proof-step stack.
type snapshot struct {
	target *Formula
	depth  int
	nextID int
	hyps   []Hypothesis
	steps  []blast.ProofStep
}

func (s *GoalState) save() *snapshot {
	hyps := make([]Hypothesis, len(s.hyps))
	copy(hyps, s.hyps)
	return &snapshot{
		target: s.target,
		depth:  s.depth,
		nextID: s.nextID,
		hyps:   hyps,
		steps:  s.steps.Save(),
	}
}

func (s *GoalState) restore(sn *snapshot) {
	s.target = sn.target
	s.depth = sn.depth
	s.nextID = sn.nextID
	s.hyps = append(s.hyps[:0], sn.hyps...)
	s.steps.Restore(sn.steps)
}
