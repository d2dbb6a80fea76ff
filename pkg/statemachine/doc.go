// Package statemachine implements a small, concurrency-safe finite state
// machine with guarded transitions and transition actions.
//
// States and events are anything with a Name. Transitions are declared up
// front with functional options:
//
//	m, err := statemachine.New(Unopened,
//	    statemachine.WithTransition(Unopened, Open, Dialed,
//	        statemachine.WithGuard(hasConn),
//	        statemachine.WithAction(logTransition),
//	    ),
//	    statemachine.WithTransition(Open, Closed, Released),
//	)
//
// Fire moves the machine along the first transition whose guards all pass.
// Actions run before the state changes; an action error leaves the machine
// where it was. A transition is atomic: when two goroutines fire the same
// event only one of them succeeds.
//
// Fire returns *NoTransitionError when nothing is declared for the current
// state and event, and *RejectedError when every candidate was vetoed by a
// guard.
package statemachine
