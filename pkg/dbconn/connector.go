package dbconn

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/logger"
)

// LoaderFunc produces a fresh credential map.
type LoaderFunc func() (credentials.Map, error)

// Option configures a Connector.
type Option func(*Connector)

// WithLoader sets the credential source.
func WithLoader(fn LoaderFunc) Option {
	return func(c *Connector) {
		if fn != nil {
			c.load = fn
		}
	}
}

// WithDriver registers a driver under name. Names are case-insensitive.
func WithDriver(name string, d Driver) Option {
	return func(c *Connector) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || d == nil {
			return
		}
		c.drivers[name] = d
	}
}

// WithDrivers registers every driver of the map.
func WithDrivers(drivers map[string]Driver) Option {
	return func(c *Connector) {
		for name, d := range drivers {
			WithDriver(name, d)(c)
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connector) {
		if l != nil {
			c.log = l
		}
	}
}

// Connector opens scoped connections by name.
// It holds no mutable state after New returns and is safe for concurrent use.
type Connector struct {
	load    LoaderFunc
	drivers map[string]Driver
	log     *slog.Logger
}

// New creates a Connector. Without WithLoader it reads the names listed in
// DB_CONNECTIONS from the process environment.
func New(opts ...Option) *Connector {
	c := &Connector{
		load: func() (credentials.Map, error) {
			return credentials.Load(credentials.NamesFromEnv()...)
		},
		drivers: make(map[string]Driver),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup loads the credential map and returns the set registered under name.
func (c *Connector) Lookup(name string) (credentials.Set, error) {
	if c.load == nil {
		return credentials.Set{}, ErrNoLoader
	}
	sets, err := c.load()
	if err != nil {
		return credentials.Set{}, err
	}
	set, ok := sets[name]
	if !ok {
		return credentials.Set{}, &NotFoundError{Name: name}
	}
	return set, nil
}

// WithConnection opens the connection registered under name, passes it to fn
// and closes it before returning. Errors from fn are returned unchanged,
// joined with the close error if closing also failed.
func (c *Connector) WithConnection(ctx context.Context, name string, fn func(context.Context, Conn) error) (err error) {
	set, err := c.Lookup(name)
	if err != nil {
		return err
	}

	drv, ok := c.drivers[set.Driver]
	if !ok {
		return &UnknownDriverError{Name: name, Driver: set.Driver}
	}

	log := c.log.With(logger.Connection(name), logger.Driver(set.Driver))
	conn := newScoped(name, set.Driver, func(from, to State) {
		log.DebugContext(ctx, "connection state changed",
			slog.String("from", from.String()),
			logger.State(to.String()),
		)
	})

	log.DebugContext(ctx, "opening connection", logger.State(StateUnopened.String()))
	raw, dialErr := drv.Dial(ctx, set)
	if err := conn.open(ctx, raw, dialErr); err != nil {
		log.DebugContext(ctx, "connection failed", logger.State(conn.state().String()), logger.Error(err))
		return err
	}

	defer func() {
		if closeErr := conn.release(context.WithoutCancel(ctx)); closeErr != nil {
			log.ErrorContext(ctx, "failed to close connection", logger.Error(closeErr))
			err = errors.Join(err, closeErr)
		}
	}()

	return fn(ctx, conn)
}
