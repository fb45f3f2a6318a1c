package blast

// Proof is an opaque proof certificate. The engine never inspects a
// proof; it only threads proofs through State.Unfold and
// ProofStep.Resolve, both supplied by the goal-state collaborator.
type Proof interface{}

// HypothesisID values uniquely identify particular hypotheses within
// a single goal state.
type HypothesisID string

func (id HypothesisID) String() string {
	return string(id)
}

// ResultKind enumerates the possible outcomes of an Action.
type ResultKind int

const (
	// ResultFailed marks a dead end. It carries no information
	// beyond that; finding an alternative is the choice-point
	// stack's job, not the caller's.
	ResultFailed ResultKind = iota
	// ResultSolved marks a closed goal and carries its proof.
	ResultSolved
	// ResultNewBranch marks that a new goal has been installed in
	// the state and must be solved before anything else.
	ResultNewBranch
)

func (k ResultKind) String() string {
	switch k {
	case ResultFailed:
		return "failed"
	case ResultSolved:
		return "solved"
	case ResultNewBranch:
		return "new-branch"
	}
	return "unknown"
}

// ActionResult is the immutable outcome of applying an Action to a
// goal state.
type ActionResult struct {
	kind  ResultKind
	proof Proof
}

// Failed returns an ActionResult marking the current path as dead.
func Failed() ActionResult {
	return ActionResult{kind: ResultFailed}
}

// Solved returns an ActionResult carrying the proof that closed the
// current goal.
func Solved(proof Proof) ActionResult {
	return ActionResult{kind: ResultSolved, proof: proof}
}

// NewBranch returns an ActionResult signaling that a new goal is now
// installed in the state.
func NewBranch() ActionResult {
	return ActionResult{kind: ResultNewBranch}
}

// Kind returns the variant of the receiver.
func (r ActionResult) Kind() ResultKind {
	return r.kind
}

// Proof returns the certificate carried by a Solved result, or nil
// for the other variants.
func (r ActionResult) Proof() Proof {
	return r.proof
}

// String implements fmt.Stringer and returns a human-readable message
// representing the receiver.
func (r ActionResult) String() string {
	return r.kind.String()
}

// An Action applies one proof-producing operation to the goal state
// reachable through the given Search. Actions must leave the state
// well formed no matter which variant they return, and an Action that
// returns NewBranch must already have pushed a ProofStep describing
// how to close the branch it just opened. Actions offering more than
// one alternative push a ChoicePoint for the untried ones.
type Action func(*Search) ActionResult
