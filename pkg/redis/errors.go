package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrLivenessFailed               = errors.New("redis ping failed")
)
