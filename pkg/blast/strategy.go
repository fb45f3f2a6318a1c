package blast

import "context"

// A Strategy is a zero-argument search entry point: a full Run
// invocation, or a composition of such invocations.
type Strategy func() (Proof, error)

// Or composes two strategies as a sequential fallback. s1 is
// evaluated first; when it produces a proof, s2 is never evaluated.
// s2 runs only when s1 exhausted its search space. An interrupted s1
// propagates immediately: falling through after a cancellation would
// make the outcome depend on timing.
func Or(s1, s2 Strategy) Strategy {
	return func() (Proof, error) {
		proof, err := s1()
		if err == nil {
			return proof, nil
		}
		if !IsExhausted(err) {
			return nil, err
		}
		return s2()
	}
}

// Strategy adapts a Run invocation of the receiver to the Strategy
// type.
func (s *Search) Strategy(ctx context.Context, dispatch Action) Strategy {
	return func() (Proof, error) {
		return s.Run(ctx, dispatch)
	}
}
