package dbconn

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("connection name not configured")
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrConnection    = errors.New("failed to connect to database")
	ErrHandleClosed  = errors.New("connection handle used outside its scope")
	ErrNoLoader      = errors.New("no credential loader configured")
	ErrNoConnection  = errors.New("driver returned no connection")
)

// NotFoundError is returned when the requested name is absent from the
// loaded credential map.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("connection %q not found in configuration", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnknownDriverError is returned when a credential set names a driver that is
// not registered with the connector.
type UnknownDriverError struct {
	Name   string
	Driver string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("connection %q uses unknown driver %q", e.Name, e.Driver)
}

func (e *UnknownDriverError) Is(target error) bool { return target == ErrUnknownDriver }

// ConnectionError wraps a driver error raised while dialing or while running
// a query on the open connection.
type ConnectionError struct {
	Name   string
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return e.Err.Error()
}

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

func (e *ConnectionError) Unwrap() error { return e.Err }
