package blast

// State is the goal-state contract consumed by the engine. A State is
// exclusively owned by the single search call active at any instant;
// backtracking restores it through choice points rather than copying
// it across branches.
type State interface {
	// SelectHypothesisToActivate returns the identifier of the
	// next pending hypothesis to activate, if any. The selection
	// heuristic belongs to the implementation.
	SelectHypothesisToActivate() (HypothesisID, bool)
	// MarkActive flips the identified hypothesis from pending to
	// active. Only the activation protocol calls it.
	MarkActive(id HypothesisID)
	// ProofDepth returns the current proof depth, used for depth
	// bounding.
	ProofDepth() int
	// ProofSteps returns the state's stack of deferred branch
	// obligations.
	ProofSteps() *ProofStepStack
	// Unfold re-contextualizes a proof built at a deeper
	// hypothesis context so that it is valid at the given depth.
	Unfold(proof Proof, depth int) Proof
	// CheckInvariant reports a violation of the state's internal
	// consistency. It is consulted only when invariant checks are
	// enabled; a non-nil return is a programming error.
	CheckInvariant() error
}
