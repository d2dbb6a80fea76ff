package redis

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
)

const DriverName = "redis"

// Conn is a single-connection Redis client.
type Conn struct {
	client *redis.Client
}

// ParseOptions builds client options for the credential set.
func ParseOptions(set credentials.Set) (*redis.Options, error) {
	dsn := strings.TrimSpace(set.DSN)
	if dsn == "" {
		return nil, ErrEmptyConnectionURL
	}

	var opts *redis.Options
	if strings.Contains(dsn, "://") {
		parsed, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseRedisConnString, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: dsn}
	}

	opts.Username = set.User
	opts.Password = set.Password.Reveal()
	opts.PoolSize = 1
	opts.MinIdleConns = 0
	opts.MaxRetries = -1
	return opts, nil
}

// Dial connects and verifies the session with PING.
func Dial(ctx context.Context, set credentials.Set) (*Conn, error) {
	opts, err := ParseOptions(set)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Conn{client: client}, nil
}

// Liveness sends PING and returns the reply.
func (c *Conn) Liveness(ctx context.Context) (any, error) {
	pong, err := c.client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLivenessFailed, err)
	}
	return pong, nil
}

// ServerVersion returns redis_version from INFO server.
func (c *Conn) ServerVersion(ctx context.Context) (string, error) {
	info, err := c.client.Info(ctx, "server").Result()
	if err != nil {
		return "", err
	}
	return parseVersion(info), nil
}

func (c *Conn) Close(context.Context) error {
	return c.client.Close()
}

func parseVersion(info string) string {
	sc := bufio.NewScanner(strings.NewReader(info))
	for sc.Scan() {
		if v, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "redis_version:"); ok {
			return v
		}
	}
	return ""
}
