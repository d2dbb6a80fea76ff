package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/sqldb"
)

const DriverName = "mysql"

// Queries run by the MySQL connection.
var Queries = sqldb.Queries{
	Liveness: "SELECT 1",
	Version:  "SELECT VERSION()",
}

// Dial opens a single MySQL session for the credential set.
func Dial(ctx context.Context, set credentials.Set) (*sqldb.Conn, error) {
	cfg, err := ParseConfig(set)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}

	return sqldb.Open(ctx, sql.OpenDB(connector), Queries)
}

// ParseConfig builds the driver configuration for the credential set.
func ParseConfig(set credentials.Set) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(normalizeDSN(set.DSN))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}
	cfg.User = set.User
	cfg.Passwd = set.Password.Reveal()
	return cfg, nil
}

// normalizeDSN rewrites "host[:port]/db" into "tcp(host[:port])/db".
func normalizeDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if strings.ContainsAny(dsn, "(@") {
		return dsn
	}
	addr, rest, ok := strings.Cut(dsn, "/")
	if !ok || addr == "" {
		return dsn
	}
	return "tcp(" + addr + ")/" + rest
}
