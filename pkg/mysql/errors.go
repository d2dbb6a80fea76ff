package mysql

import "errors"

var ErrInvalidDSN = errors.New("invalid mysql dsn")
