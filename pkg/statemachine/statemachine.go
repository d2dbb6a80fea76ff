package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State is a node of the machine.
type State interface {
	Name() string
}

// Event triggers a transition.
type Event interface {
	Name() string
}

// StringEvent is an Event named by its value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// Guard vetoes a transition by returning false.
type Guard func(ctx context.Context, from State, event Event) bool

// Action runs during a transition, before the state changes. A non-nil error
// cancels the transition.
type Action func(ctx context.Context, from, to State, event Event) error

type transition struct {
	to      State
	guards  []Guard
	actions []Action
}

// Machine is an in-memory state machine. Transitions are looked up by
// [from][event] name.
type Machine struct {
	mu          sync.Mutex
	current     State
	transitions map[string]map[string][]transition
}

// Option declares part of the machine.
type Option func(*Machine) error

// TransitionOption attaches guards or actions to a transition.
type TransitionOption func(*transition)

// New builds a machine starting in initial.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string][]transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition declares from --event--> to. Several transitions may share
// from and event; the first one whose guards pass wins.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		if from == nil || to == nil || event == nil {
			return ErrInvalidTransition
		}
		t := transition{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		byEvent, ok := m.transitions[from.Name()]
		if !ok {
			byEvent = make(map[string][]transition)
			m.transitions[from.Name()] = byEvent
		}
		byEvent[event.Name()] = append(byEvent[event.Name()], t)
		return nil
	}
}

// WithGuard adds a guard to the transition. Nil guards are ignored.
func WithGuard(g Guard) TransitionOption {
	return func(t *transition) {
		if g != nil {
			t.guards = append(t.guards, g)
		}
	}
}

// WithAction adds an action to the transition. Nil actions are ignored.
func WithAction(a Action) TransitionOption {
	return func(t *transition) {
		if a != nil {
			t.actions = append(t.actions, a)
		}
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.pick(ctx, event)
	if err != nil {
		return err
	}
	for _, action := range t.actions {
		if err := action(ctx, m.current, t.to, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.to
	return nil
}

// CanFire reports whether Fire(ctx, event) would find an allowed transition.
// Actions are not run.
func (m *Machine) CanFire(ctx context.Context, event Event) bool {
	if event == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.pick(ctx, event)
	return err == nil
}

func (m *Machine) pick(ctx context.Context, event Event) (transition, error) {
	from := m.current.Name()
	candidates := m.transitions[from][event.Name()]
	if len(candidates) == 0 {
		return transition{}, &NoTransitionError{State: from, Event: event.Name()}
	}

next:
	for _, t := range candidates {
		for _, g := range t.guards {
			if !g(ctx, m.current, event) {
				continue next
			}
		}
		return t, nil
	}
	return transition{}, &RejectedError{State: from, Event: event.Name()}
}
