package prop

import (
	"github.com/tactic-framework/blast/pkg/blast"
)

// Proof steps carry no mutable phase of their own: a step that needs
// a second branch pops itself and pushes its successor, so that
// snapshot/restore of the step stack is all a choice point needs to
// rewind branching decisions.

// andRightStep waits for the left conjunct's proof, then opens the
// right conjunct as a fresh branch.
type andRightStep struct {
	s     *GoalState
	depth int
	right *Formula
}

func (st *andRightStep) Depth() int { return st.depth }

func (st *andRightStep) Resolve(pr blast.Proof) blast.ActionResult {
	left, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.steps.Pop()
	st.s.steps.Push(&andDoneStep{s: st.s, depth: st.depth, left: left})
	st.s.truncate(st.depth)
	st.s.target = st.right
	st.s.depth = st.depth + 1
	return blast.NewBranch()
}

// andDoneStep combines the proofs of both conjuncts.
type andDoneStep struct {
	s     *GoalState
	depth int
	left  *Proof
}

func (st *andDoneStep) Depth() int { return st.depth }

func (st *andDoneStep) Resolve(pr blast.Proof) blast.ActionResult {
	right, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.truncate(st.depth)
	return blast.Solved(AndIntro(st.left, right))
}

// impIntroStep discharges the assumed antecedent around the branch
// proof of the consequent.
type impIntroStep struct {
	s       *GoalState
	depth   int
	assumed *Formula
}

func (st *impIntroStep) Depth() int { return st.depth }

func (st *impIntroStep) Resolve(pr blast.Proof) blast.ActionResult {
	body, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.truncate(st.depth)
	return blast.Solved(ImpIntro(st.assumed, body))
}

// orIntroStep wraps a disjunct's proof into the disjunction it was
// split from.
type orIntroStep struct {
	s          *GoalState
	depth      int
	conclusion *Formula
	left       bool
}

func (st *orIntroStep) Depth() int { return st.depth }

func (st *orIntroStep) Resolve(pr blast.Proof) blast.ActionResult {
	p, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.truncate(st.depth)
	if st.left {
		return blast.Solved(OrIntroLeft(p, st.conclusion))
	}
	return blast.Solved(OrIntroRight(p, st.conclusion))
}

// orElimRightStep holds the first case-analysis branch's proof of the
// goal and opens the second case.
type orElimRightStep struct {
	s           *GoalState
	depth       int
	disjunction *Proof
	right       *Formula
	goal        *Formula
}

func (st *orElimRightStep) Depth() int { return st.depth }

func (st *orElimRightStep) Resolve(pr blast.Proof) blast.ActionResult {
	left, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.steps.Pop()
	st.s.steps.Push(&orElimDoneStep{
		s:           st.s,
		depth:       st.depth,
		disjunction: st.disjunction,
		left:        left,
	})
	st.s.truncate(st.depth)
	st.s.target = st.goal
	st.s.depth = st.depth + 1
	st.s.addHypothesis(st.right, Assumption(st.right))
	return blast.NewBranch()
}

// orElimDoneStep combines both case proofs into an or-elimination.
type orElimDoneStep struct {
	s           *GoalState
	depth       int
	disjunction *Proof
	left        *Proof
}

func (st *orElimDoneStep) Depth() int { return st.depth }

func (st *orElimDoneStep) Resolve(pr blast.Proof) blast.ActionResult {
	right, ok := pr.(*Proof)
	if !ok {
		return blast.Failed()
	}
	st.s.truncate(st.depth)
	return blast.Solved(OrElim(st.disjunction, st.left, right))
}

// orIntroChoice backtracks a disjunctive target to its untried right
// disjunct.
type orIntroChoice struct {
	s     *GoalState
	saved *snapshot
	tried bool
}

func (c *orIntroChoice) Next() blast.ActionResult {
	if c.tried {
		return blast.Failed()
	}
	c.tried = true
	c.s.restore(c.saved)
	installOrIntro(c.s, false)
	return blast.NewBranch()
}

// installOrIntro opens one disjunct of a disjunctive target as a
// fresh branch.
func installOrIntro(s *GoalState, left bool) {
	goal := s.target
	depth := s.depth
	s.steps.Push(&orIntroStep{s: s, depth: depth, conclusion: goal, left: left})
	if left {
		s.target = goal.Left()
	} else {
		s.target = goal.Right()
	}
	s.depth = depth + 1
}
