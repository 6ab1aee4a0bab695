package workflow

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across package boundaries.
var (
	ErrInvalidState      = errors.New("state is not a member of the workflow domain")
	ErrIllegalTransition = errors.New("transition is not permitted by the workflow table")
)

// InvalidStateError reports a state outside the domain's enumerated set,
// which indicates corrupt input or corrupt stored data.
type InvalidStateError struct {
	Domain Domain
	State  State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s workflow: unknown state %q", e.Domain, e.State)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// IllegalTransitionError reports a (from, to) pair absent from the domain's
// transition table. The move was rejected before any persistence.
type IllegalTransitionError struct {
	Domain Domain
	From   State
	To     State
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s workflow: transition %s -> %s is not permitted", e.Domain, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }
