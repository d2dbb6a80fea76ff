package sqldb

import "errors"

var (
	ErrNilDB          = errors.New("nil *sql.DB")
	ErrLivenessFailed = errors.New("liveness query failed")
	ErrVersionFailed  = errors.New("server version query failed")
)
