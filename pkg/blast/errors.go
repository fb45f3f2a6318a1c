package blast

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when a search is cancelled through its
// context before reaching a verdict. It is distinct from exhaustion:
// an interrupted search says nothing about provability.
var ErrInterrupted = errors.New("search interrupted before completion")

// ExhaustedError is returned when every alternative in the search
// scope has been tried without producing a proof. It is a valid
// negative result, not a malfunction.
type ExhaustedError struct {
	// State is the final goal state, retained for diagnostics when
	// the search was configured to surface it, and nil otherwise.
	State State
}

func (e ExhaustedError) Error() string {
	const msg = "proof not found: search space exhausted"
	if e.State == nil {
		return msg
	}
	return fmt.Sprintf("%s\nfinal state:\n%v", msg, e.State)
}

// IsExhausted reports whether err marks an exhausted search.
func IsExhausted(err error) bool {
	var e ExhaustedError
	return errors.As(err, &e)
}
