package prop

import (
	"github.com/tactic-framework/blast/pkg/blast"
)

// Dispatch returns the action catalogue for propositional goals, in
// the order the search tries them: trivial closure, hypothesis
// activation, SAT closure over the active hypotheses (when classical
// is set), invertible target decomposition and disjunctive target
// splitting.
func Dispatch(classical bool) blast.Action {
	return func(search *blast.Search) blast.ActionResult {
		s := search.State().(*GoalState)

		if r := closeTrivial(s); r.Kind() != blast.ResultFailed {
			return r
		}

		if r := search.ActivateHypothesis(); r.Kind() != blast.ResultFailed {
			return r
		}

		// SAT closure runs before decomposition: a classically valid
		// target must close here even when its shape would decompose
		// into branches no classical step can reach.
		if classical {
			var under []*Proof
			var formulas []*Formula
			for i := range s.hyps {
				if s.hyps[i].Active {
					under = append(under, s.hyps[i].Proof)
					formulas = append(formulas, s.hyps[i].Formula)
				}
			}
			if Valid(formulas, s.target) {
				return blast.Solved(Classical(s.target, under))
			}
		}

		switch s.target.Kind() {
		case KindAnd:
			depth := s.depth
			s.steps.Push(&andRightStep{s: s, depth: depth, right: s.target.Right()})
			s.target = s.target.Left()
			s.depth = depth + 1
			return blast.NewBranch()
		case KindImplies:
			depth := s.depth
			s.steps.Push(&impIntroStep{s: s, depth: depth, assumed: s.target.Left()})
			assumed := s.target.Left()
			s.target = s.target.Right()
			s.depth = depth + 1
			s.addHypothesis(assumed, Assumption(assumed))
			return blast.NewBranch()
		case KindOr:
			// Try the left disjunct now, leave the right one
			// behind a choice point.
			saved := s.save()
			search.ChoicePoints().Push(&orIntroChoice{s: s, saved: saved})
			installOrIntro(s, true)
			return blast.NewBranch()
		}

		return blast.Failed()
	}
}

// closeTrivial closes goals that need no search: a true target, a
// target matching an active hypothesis, or an active contradiction.
func closeTrivial(s *GoalState) blast.ActionResult {
	if s.target.Kind() == KindTrue {
		return blast.Solved(TrueIntro())
	}
	for i := range s.hyps {
		if !s.hyps[i].Active {
			continue
		}
		if s.hyps[i].Formula.Equal(s.target) {
			return blast.Solved(s.hyps[i].Proof)
		}
		if s.hyps[i].Formula.Kind() == KindFalse {
			return blast.Solved(ExFalso(s.target, s.hyps[i].Proof))
		}
	}
	return blast.Failed()
}

// PreActivation closes the goal outright when the selected hypothesis
// alone decides it: a contradiction or an exact match of the target.
// In both cases the hypothesis stays pending; the engine's activation
// protocol guarantees MarkActive is never reached.
func PreActivation(search *blast.Search, id blast.HypothesisID) blast.ActionResult {
	s := search.State().(*GoalState)
	h := s.find(id)
	if h == nil {
		return blast.Failed()
	}
	if h.Formula.Kind() == KindFalse {
		return blast.Solved(ExFalso(s.target, h.Proof))
	}
	if h.Formula.Equal(s.target) {
		return blast.Solved(h.Proof)
	}
	return blast.NewBranch()
}

// PostActivation decomposes the freshly activated hypothesis:
// conjunctions split into their conjuncts, disjunctions open a case
// analysis on the goal, and implications chain forward against the
// other active hypotheses.
func PostActivation(search *blast.Search, id blast.HypothesisID) blast.ActionResult {
	s := search.State().(*GoalState)
	h := s.find(id)
	if h == nil {
		return blast.Failed()
	}
	f, proof := h.Formula, h.Proof
	switch f.Kind() {
	case KindAnd:
		s.addHypothesis(f.Left(), AndElimLeft(proof))
		s.addHypothesis(f.Right(), AndElimRight(proof))
	case KindOr:
		depth := s.depth
		s.steps.Push(&orElimRightStep{
			s:           s,
			depth:       depth,
			disjunction: proof,
			right:       f.Right(),
			goal:        s.target,
		})
		s.depth = depth + 1
		s.addHypothesis(f.Left(), Assumption(f.Left()))
	case KindImplies:
		if antecedent, ok := s.activeProofOf(f.Left()); ok {
			s.addHypothesis(f.Right(), ImpElim(proof, antecedent))
		}
	}
	// The new fact may be the antecedent of an implication that was
	// activated earlier.
	for i := range s.hyps {
		other := s.hyps[i]
		if other.Active && other.Formula.Kind() == KindImplies && other.Formula.Left().Equal(f) {
			s.addHypothesis(other.Formula.Right(), ImpElim(other.Proof, proof))
		}
	}
	return blast.NewBranch()
}
