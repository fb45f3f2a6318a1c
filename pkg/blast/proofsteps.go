package blast

// A ProofStep is a deferred obligation to close a previously opened
// branch once its proof becomes available. Resolve combines the step
// with a candidate sub-proof and yields a new ActionResult for the
// step's own goal: Solved when the step is discharged, NewBranch when
// resolution opened a further goal, Failed when the candidate cannot
// serve. Depth reports the proof depth the step expects candidate
// proofs to be unfolded to.
type ProofStep interface {
	Resolve(proof Proof) ActionResult
	Depth() int
}

// Checkpoint marks a position in a ProofStepStack. Steps pushed after
// the mark belong to the scope that took it.
type Checkpoint int

// ProofStepStack is the stack of deferred branch obligations owned by
// a goal state. Steps are resolved in strict LIFO order and popped
// exactly once, when their sub-proof has been accepted.
type ProofStepStack struct {
	steps []ProofStep
}

// Push adds a step on top of the stack.
func (s *ProofStepStack) Push(step ProofStep) {
	s.steps = append(s.steps, step)
}

// Top returns the most recently pushed step. It panics when the stack
// is empty; callers guard with HasNewSteps or Len.
func (s *ProofStepStack) Top() ProofStep {
	return s.steps[len(s.steps)-1]
}

// Pop removes the most recently pushed step.
func (s *ProofStepStack) Pop() {
	s.steps = s.steps[:len(s.steps)-1]
}

// Len returns the number of outstanding steps.
func (s *ProofStepStack) Len() int {
	return len(s.steps)
}

// Checkpoint records the current stack height.
func (s *ProofStepStack) Checkpoint() Checkpoint {
	return Checkpoint(len(s.steps))
}

// HasNewSteps reports whether any steps pushed after the checkpoint
// are still outstanding.
func (s *ProofStepStack) HasNewSteps(c Checkpoint) bool {
	return len(s.steps) > int(c)
}

// Save returns a copy of the outstanding steps, suitable for
// inclusion in a backtracking snapshot.
func (s *ProofStepStack) Save() []ProofStep {
	saved := make([]ProofStep, len(s.steps))
	copy(saved, s.steps)
	return saved
}

// Restore replaces the outstanding steps with a previously saved
// copy.
func (s *ProofStepStack) Restore(steps []ProofStep) {
	s.steps = append(s.steps[:0], steps...)
}
