package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dbprobe/pkg/dbconn"
	"github.com/dmitrymomot/dbprobe/pkg/logger"
)

// Connector lends a scoped connection for the duration of fn.
type Connector interface {
	WithConnection(ctx context.Context, name string, fn func(context.Context, dbconn.Conn) error) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger that records every outcome.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner probes connections one at a time.
type Runner struct {
	conn Connector
	log  *slog.Logger
}

// New creates a Runner backed by conn.
func New(conn Connector, opts ...Option) *Runner {
	r := &Runner{
		conn: conn,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run runs the liveness statement on the named connection.
func (r *Runner) Run(ctx context.Context, name string) Result {
	return r.probe(ctx, name, false)
}

// RunAll probes each name in order, also collecting the server version.
func (r *Runner) RunAll(ctx context.Context, names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, r.probe(ctx, name, true))
	}
	return results
}

func (r *Runner) probe(ctx context.Context, name string, withVersion bool) (res Result) {
	res.Name = name
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Kind = KindUnexpected
			res.Err = fmt.Errorf("panic: %v", p)
			res.Value, res.Version = nil, ""
		}
		r.record(ctx, res, time.Since(start))
	}()

	err := r.conn.WithConnection(ctx, name, func(ctx context.Context, c dbconn.Conn) error {
		v, err := c.Liveness(ctx)
		if err != nil {
			return err
		}
		res.Value = v

		if withVersion {
			if res.Version, err = c.ServerVersion(ctx); err != nil {
				return err
			}
		}
		return nil
	})

	res.Kind, res.Driver = Classify(err)
	res.Err = err
	return res
}

func (r *Runner) record(ctx context.Context, res Result, elapsed time.Duration) {
	attrs := []any{
		logger.Connection(res.Name),
		logger.Outcome(res.Kind.String()),
		logger.Duration(elapsed),
	}
	if res.Driver != "" {
		attrs = append(attrs, logger.Driver(res.Driver))
	}

	if res.OK() {
		attrs = append(attrs, slog.Any("value", res.Value))
		if res.Version != "" {
			attrs = append(attrs, slog.String("version", res.Version))
		}
		r.log.InfoContext(ctx, "probe succeeded", attrs...)
		return
	}

	attrs = append(attrs, logger.Error(res.Err))
	r.log.ErrorContext(ctx, "probe failed", attrs...)
}
