package credentials

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("incomplete connection configuration")

// ConfigurationError reports the required variables of one connection name
// that are absent or empty.
type ConfigurationError struct {
	Name    string
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing environment variables for %s: %s", e.Name, strings.Join(e.Missing, ", "))
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
