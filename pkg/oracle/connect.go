package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	go_ora "github.com/sijms/go-ora/v2"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/sqldb"
)

const (
	DriverName  = "oracle"
	DefaultPort = 1521
)

// Queries run by the Oracle connection.
var Queries = sqldb.Queries{
	Liveness: "SELECT 1 FROM DUAL",
	Version:  "SELECT version FROM product_component_version WHERE product LIKE 'Oracle%' AND ROWNUM = 1",
}

// Dial opens a single Oracle session for the credential set.
func Dial(ctx context.Context, set credentials.Set) (*sqldb.Conn, error) {
	connURL, err := ConnectionURL(set)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(DriverName, connURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpenDatabase, err)
	}

	return sqldb.Open(ctx, db, Queries)
}

// ConnectionURL builds the go-ora connection URL for the credential set.
// Connect descriptors and tnsnames aliases are passed to go-ora unchanged.
func ConnectionURL(set credentials.Set) (string, error) {
	dsn := strings.TrimSpace(set.DSN)

	switch {
	case strings.HasPrefix(dsn, "("):
		return go_ora.BuildJDBC(set.User, set.Password.Reveal(), dsn, nil), nil
	case strings.HasPrefix(strings.ToLower(dsn), "oracle://"):
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidDSN, err)
		}
		if u.Host == "" {
			return "", ErrInvalidDSN
		}
		u.User = url.UserPassword(set.User, set.Password.Reveal())
		return u.String(), nil
	case isAlias(dsn):
		return go_ora.BuildJDBC(set.User, set.Password.Reveal(), dsn, nil), nil
	}

	host, port, service, err := splitEasyConnect(dsn)
	if err != nil {
		return "", err
	}
	return go_ora.BuildUrl(host, port, service, set.User, set.Password.Reveal(), nil), nil
}

// isAlias reports whether dsn looks like a tnsnames entry name.
func isAlias(dsn string) bool {
	if dsn == "" {
		return false
	}
	for _, r := range dsn {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
		default:
			return false
		}
	}
	return true
}

// splitEasyConnect parses "host[:port]/service", tolerating a leading "//".
// IPv6 hosts must be bracketed.
func splitEasyConnect(dsn string) (host string, port int, service string, err error) {
	dsn = strings.TrimPrefix(dsn, "//")

	addr, service, ok := strings.Cut(dsn, "/")
	if !ok || addr == "" || service == "" {
		return "", 0, "", ErrInvalidDSN
	}

	host, portStr, splitErr := net.SplitHostPort(addr)
	if splitErr != nil {
		switch {
		case strings.HasPrefix(addr, "[") && strings.HasSuffix(addr, "]"):
			host = addr[1 : len(addr)-1]
		case strings.ContainsAny(addr, ":[]"):
			return "", 0, "", ErrInvalidDSN
		default:
			host = addr
		}
		if host == "" {
			return "", 0, "", ErrInvalidDSN
		}
		return host, DefaultPort, service, nil
	}
	if host == "" {
		return "", 0, "", ErrInvalidDSN
	}
	port, convErr := strconv.Atoi(portStr)
	if convErr != nil || port <= 0 || port > 65535 {
		return "", 0, "", ErrInvalidDSN
	}
	return host, port, service, nil
}
