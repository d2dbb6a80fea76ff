package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/redis"
)

func TestParseOptions_Address(t *testing.T) {
	opts, err := redis.ParseOptions(credentials.Set{User: "probe", Password: "secret", DSN: "cache.internal:6380"})
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "probe", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.PoolSize)
	assert.Equal(t, -1, opts.MaxRetries)
}

func TestParseOptions_URL(t *testing.T) {
	opts, err := redis.ParseOptions(credentials.Set{User: "probe", Password: "secret", DSN: "redis://other:pw@cache.internal:6379/2"})
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "probe", opts.Username)
	assert.Equal(t, "secret", opts.Password)
}

func TestParseOptions_Invalid(t *testing.T) {
	_, err := redis.ParseOptions(credentials.Set{DSN: "   "})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.ParseOptions(credentials.Set{DSN: "http://cache.internal"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestDial_InvalidDSN(t *testing.T) {
	conn, err := redis.Dial(context.Background(), credentials.Set{DSN: "http://cache.internal"})
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}
