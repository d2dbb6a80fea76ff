package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Queries are the driver-specific statements a Conn runs.
type Queries struct {
	// Liveness must return exactly one row with one column.
	Liveness string
	// Version must return exactly one row with one text column.
	Version string
}

// Conn is one pinned database/sql connection.
type Conn struct {
	db      *sql.DB
	conn    *sql.Conn
	queries Queries
}

// Open pins a single connection from db. The pool is restricted to one open
// connection first. On failure db is closed, so the caller never has to.
func Open(ctx context.Context, db *sql.DB, q Queries) (*Conn, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, err
	}

	return &Conn{db: db, conn: conn, queries: q}, nil
}

// Liveness runs the liveness statement and returns its single value.
func (c *Conn) Liveness(ctx context.Context) (any, error) {
	var v any
	if err := c.conn.QueryRowContext(ctx, c.queries.Liveness).Scan(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLivenessFailed, err)
	}
	return normalize(v), nil
}

// ServerVersion runs the version statement.
func (c *Conn) ServerVersion(ctx context.Context) (string, error) {
	if c.queries.Version == "" {
		return "", nil
	}
	var v string
	if err := c.conn.QueryRowContext(ctx, c.queries.Version).Scan(&v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrVersionFailed, err)
	}
	return v, nil
}

// Close returns the pinned connection and closes the pool.
func (c *Conn) Close(context.Context) error {
	return errors.Join(c.conn.Close(), c.db.Close())
}

// normalize turns driver byte slices into strings so values print naturally.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
