package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
)

const (
	DriverName    = "postgres"
	LivenessQuery = "SELECT 1"
)

// Conn is a single PostgreSQL session.
type Conn struct {
	conn *pgx.Conn
}

// ParseConfig builds the pgx configuration for the credential set.
func ParseConfig(set credentials.Set) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(set.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseDBConfig, err)
	}
	cfg.User = set.User
	cfg.Password = set.Password.Reveal()
	return cfg, nil
}

// Dial opens a PostgreSQL session for the credential set.
func Dial(ctx context.Context, set credentials.Set) (*Conn, error) {
	cfg, err := ParseConfig(set)
	if err != nil {
		return nil, err
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Conn{conn: conn}, nil
}

// Liveness runs SELECT 1.
func (c *Conn) Liveness(ctx context.Context) (any, error) {
	var v int64
	if err := c.conn.QueryRow(ctx, LivenessQuery).Scan(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLivenessFailed, err)
	}
	return v, nil
}

// ServerVersion returns the server_version startup parameter.
func (c *Conn) ServerVersion(context.Context) (string, error) {
	return c.conn.PgConn().ParameterStatus("server_version"), nil
}

func (c *Conn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
