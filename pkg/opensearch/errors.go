package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the OpenSearch client could not be created
	// due to configuration or network issues. Use errors.Is() to check.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrNoAddresses indicates the DSN did not contain any node URL.
	ErrNoAddresses = errors.New("opensearch dsn contains no addresses")

	// ErrUnhealthy is returned when the cluster answers with an error status.
	ErrUnhealthy = errors.New("opensearch responded with an error status")
)
