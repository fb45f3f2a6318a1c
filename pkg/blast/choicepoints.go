package blast

// A ChoicePoint records an untried alternative together with the undo
// information needed to reach it. Next restores the goal state to the
// point the alternative applies to and returns the alternative's
// result, or Failed when no alternatives remain. An exhausted choice
// point is popped by the stack and never consulted again.
type ChoicePoint interface {
	Next() ActionResult
}

// ChoicePointStack is the stack of backtrack records shared by every
// search scope of one tactic invocation. Choice points are ordered by
// creation time; a nested scope may only pop entries created after
// its own mark.
type ChoicePointStack struct {
	cps []ChoicePoint
}

// Push adds a choice point on top of the stack.
func (s *ChoicePointStack) Push(cp ChoicePoint) {
	s.cps = append(s.cps, cp)
}

// Len returns the number of choice points currently on the stack.
func (s *ChoicePointStack) Len() int {
	return len(s.cps)
}

// NextChoicePoint tries choice points from the top of the stack down,
// popping each exhausted one, until an alternative yields a result
// other than Failed. It never pops below bound; once the stack
// reaches bound, Failed is returned and the scope is out of
// alternatives.
func (s *ChoicePointStack) NextChoicePoint(bound int) ActionResult {
	for len(s.cps) > bound {
		r := s.cps[len(s.cps)-1].Next()
		if r.Kind() != ResultFailed {
			return r
		}
		s.cps = s.cps[:len(s.cps)-1]
	}
	return Failed()
}

// OpenScope marks the current stack height. Closing the returned
// scope discards every choice point pushed after the mark, tried or
// not, without disturbing entries that belong to enclosing scopes.
func (s *ChoicePointStack) OpenScope() ChoiceScope {
	return ChoiceScope{stack: s, mark: len(s.cps)}
}

// ChoiceScope is a bounded region of choice-point bookkeeping
// corresponding to one search invocation.
type ChoiceScope struct {
	stack *ChoicePointStack
	mark  int
}

// Mark returns the stack height recorded when the scope was opened.
func (sc ChoiceScope) Mark() int {
	return sc.mark
}

// Close truncates the stack back to the scope's mark.
func (sc ChoiceScope) Close() {
	if len(sc.stack.cps) > sc.mark {
		sc.stack.cps = sc.stack.cps[:sc.mark]
	}
}
