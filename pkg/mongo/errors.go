package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrInvalidURI             = errors.New("mongo dsn must start with mongodb:// or mongodb+srv://")
	ErrLivenessFailed         = errors.New("mongo ping failed")
)
