package dbconn

import (
	"context"

	"github.com/dmitrymomot/dbprobe/pkg/statemachine"
)

// scopedConn owns a driver connection for the duration of one
// WithConnection call. Its lifecycle machine guarantees a single close and
// rejects use once the connection is no longer open.
type scopedConn struct {
	name   string
	driver string
	conn   Conn
	life   *statemachine.Machine
}

func newScoped(name, driver string, observe transitionFunc) *scopedConn {
	s := &scopedConn{name: name, driver: driver}
	s.life = newLifecycle(func() bool { return s.conn != nil }, observe)
	return s
}

// open attaches the result of a dial. A dial error, or a driver that
// returned no connection, moves the handle to Failed.
func (s *scopedConn) open(ctx context.Context, conn Conn, dialErr error) error {
	if dialErr == nil {
		s.conn = conn
		if s.life.Fire(ctx, eventOpen) == nil {
			return nil
		}
		dialErr = ErrNoConnection
	}
	_ = s.life.Fire(ctx, eventFail)
	return s.wrap(dialErr)
}

func (s *scopedConn) state() State {
	return s.life.Current().(State)
}

func (s *scopedConn) wrap(err error) error {
	return &ConnectionError{Name: s.name, Driver: s.driver, Err: err}
}

func (s *scopedConn) active(ctx context.Context) error {
	if !s.life.CanFire(ctx, eventClose) {
		return ErrHandleClosed
	}
	return nil
}

func (s *scopedConn) Liveness(ctx context.Context) (any, error) {
	if err := s.active(ctx); err != nil {
		return nil, err
	}
	v, err := s.conn.Liveness(ctx)
	if err != nil {
		return nil, s.wrap(err)
	}
	return v, nil
}

func (s *scopedConn) ServerVersion(ctx context.Context) (string, error) {
	if err := s.active(ctx); err != nil {
		return "", err
	}
	v, err := s.conn.ServerVersion(ctx)
	if err != nil {
		return "", s.wrap(err)
	}
	return v, nil
}

// Close may be called by the callback; the deferred release then does nothing.
func (s *scopedConn) Close(ctx context.Context) error {
	return s.close(ctx, true)
}

// release closes the connection if the callback has not already done so.
func (s *scopedConn) release(ctx context.Context) error {
	return s.close(ctx, false)
}

func (s *scopedConn) close(ctx context.Context, strict bool) error {
	if err := s.life.Fire(ctx, eventClose); err != nil {
		if strict {
			return ErrHandleClosed
		}
		return nil
	}
	return s.conn.Close(ctx)
}
