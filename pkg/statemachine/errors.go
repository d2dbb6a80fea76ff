package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilState          = errors.New("statemachine: initial state cannot be nil")
	ErrInvalidTransition = errors.New("statemachine: from, to and event must be set")
	ErrInvalidEvent      = errors.New("statemachine: event cannot be nil")
)

// NoTransitionError reports that no transition is declared for the event in
// the current state.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition from %q on %q", e.State, e.Event)
}

// RejectedError reports that every candidate transition was vetoed by a guard.
type RejectedError struct {
	State string
	Event string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transition from %q on %q rejected by guards", e.State, e.Event)
}
