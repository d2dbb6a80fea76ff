package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dbprobe/pkg/statemachine"
)

type state string

func (s state) Name() string { return string(s) }

const (
	idle    = state("idle")
	running = state("running")
	stopped = state("stopped")
	broken  = state("broken")

	start = statemachine.StringEvent("start")
	stop  = statemachine.StringEvent("stop")
)

func TestNew_Validation(t *testing.T) {
	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrNilState)

	_, err = statemachine.New(idle, statemachine.WithTransition(idle, nil, start))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(idle, statemachine.WithTransition(nil, running, start))
	})
}

func TestFire(t *testing.T) {
	ctx := context.Background()
	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, running, start),
		statemachine.WithTransition(running, stopped, stop),
	)

	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, running, m.Current())
	require.NoError(t, m.Fire(ctx, stop))
	assert.Equal(t, stopped, m.Current())

	err := m.Fire(ctx, start)
	var noTr *statemachine.NoTransitionError
	require.ErrorAs(t, err, &noTr)
	assert.Equal(t, "stopped", noTr.State)
	assert.Equal(t, "start", noTr.Event)

	assert.ErrorIs(t, m.Fire(ctx, nil), statemachine.ErrInvalidEvent)
}

func TestFire_GuardsPickFirstAllowed(t *testing.T) {
	ctx := context.Background()
	healthy := false
	isHealthy := func(context.Context, statemachine.State, statemachine.Event) bool { return healthy }

	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, running, start, statemachine.WithGuard(isHealthy)),
	)
	var rejected *statemachine.RejectedError
	assert.ErrorAs(t, m.Fire(ctx, start), &rejected)
	assert.False(t, m.CanFire(ctx, start))
	assert.Equal(t, idle, m.Current())

	m = statemachine.MustNew(idle,
		statemachine.WithTransition(idle, running, start, statemachine.WithGuard(isHealthy), statemachine.WithGuard(nil)),
		statemachine.WithTransition(idle, broken, start),
	)
	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, broken, m.Current())

	healthy = true
	m = statemachine.MustNew(idle,
		statemachine.WithTransition(idle, running, start, statemachine.WithGuard(isHealthy)),
		statemachine.WithTransition(idle, broken, start),
	)
	assert.True(t, m.CanFire(ctx, start))
	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, running, m.Current())
}

func TestFire_Actions(t *testing.T) {
	ctx := context.Background()
	var seen []string
	record := func(_ context.Context, from, to statemachine.State, ev statemachine.Event) error {
		seen = append(seen, from.Name()+"->"+to.Name()+"@"+ev.Name())
		return nil
	}
	fail := errors.New("veto")

	m := statemachine.MustNew(idle,
		statemachine.WithTransition(idle, running, start, statemachine.WithAction(record), statemachine.WithAction(nil)),
		statemachine.WithTransition(running, stopped, stop, statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event) error {
			return fail
		})),
	)

	require.NoError(t, m.Fire(ctx, start))
	assert.Equal(t, []string{"idle->running@start"}, seen)

	err := m.Fire(ctx, stop)
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, running, m.Current(), "failed action keeps the state")
}

func TestFire_ConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	m := statemachine.MustNew(running, statemachine.WithTransition(running, stopped, stop))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Fire(ctx, stop) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}
