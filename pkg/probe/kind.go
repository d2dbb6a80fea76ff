package probe

import (
	"errors"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/dbconn"
)

// Kind is the classified outcome of a probe.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindConfiguration
	KindConnection
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	case KindConnection:
		return "connection"
	default:
		return "unexpected"
	}
}

// Classify maps an error returned by a Connector to its Kind and, for
// connection failures, the driver that failed.
func Classify(err error) (Kind, string) {
	if err == nil {
		return KindOK, ""
	}

	var connErr *dbconn.ConnectionError
	switch {
	case errors.As(err, &connErr):
		return KindConnection, connErr.Driver
	case errors.Is(err, dbconn.ErrNotFound):
		return KindNotFound, ""
	case errors.Is(err, credentials.ErrConfiguration):
		return KindConfiguration, ""
	default:
		return KindUnexpected, ""
	}
}
