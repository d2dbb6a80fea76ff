package dbconn

import (
	"context"

	"github.com/dmitrymomot/dbprobe/pkg/statemachine"
)

// State is the lifecycle position of a scoped connection.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Name implements statemachine.State.
func (s State) Name() string { return s.String() }

const (
	eventOpen  = statemachine.StringEvent("open")
	eventFail  = statemachine.StringEvent("fail")
	eventClose = statemachine.StringEvent("close")
)

// transitionFunc observes state changes of a scoped connection.
type transitionFunc func(from, to State)

// newLifecycle declares Unopened→Open (only with a live connection),
// Unopened→Failed and Open→Closed. Every transition is reported to observe.
func newLifecycle(hasConn func() bool, observe transitionFunc) *statemachine.Machine {
	report := statemachine.WithAction(func(_ context.Context, from, to statemachine.State, _ statemachine.Event) error {
		if observe != nil {
			observe(from.(State), to.(State))
		}
		return nil
	})
	connected := statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event) bool {
		return hasConn()
	})

	return statemachine.MustNew(StateUnopened,
		statemachine.WithTransition(StateUnopened, StateOpen, eventOpen, connected, report),
		statemachine.WithTransition(StateUnopened, StateFailed, eventFail, report),
		statemachine.WithTransition(StateOpen, StateClosed, eventClose, report),
	)
}
