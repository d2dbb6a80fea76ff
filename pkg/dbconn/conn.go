package dbconn

import (
	"context"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
)

// Conn is an open database handle owned by a single scope.
type Conn interface {
	// Liveness runs the driver's trivial query and returns its single value.
	Liveness(ctx context.Context) (any, error)
	// ServerVersion reports the version string announced by the server.
	ServerVersion(ctx context.Context) (string, error)
	// Close releases the underlying network resources.
	Close(ctx context.Context) error
}

// Driver opens connections from a credential set.
type Driver interface {
	Dial(ctx context.Context, set credentials.Set) (Conn, error)
}

// DriverFunc adapts a plain function to the Driver interface.
type DriverFunc func(ctx context.Context, set credentials.Set) (Conn, error)

func (f DriverFunc) Dial(ctx context.Context, set credentials.Set) (Conn, error) {
	return f(ctx, set)
}

// Adapt turns a dial function returning a concrete connection type into a
// Driver. A failed dial yields a nil Conn rather than a typed nil.
func Adapt[C Conn](dial func(context.Context, credentials.Set) (C, error)) Driver {
	return DriverFunc(func(ctx context.Context, set credentials.Set) (Conn, error) {
		c, err := dial(ctx, set)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
