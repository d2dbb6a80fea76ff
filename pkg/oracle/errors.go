package oracle

import "errors"

var (
	ErrInvalidDSN           = errors.New("invalid oracle dsn, expected host[:port]/service, oracle:// url, connect descriptor or tns alias")
	ErrFailedToOpenDatabase = errors.New("failed to open oracle database")
)
