package pg

import "errors"

var (
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")
	ErrLivenessFailed        = errors.New("liveness query failed")
)
