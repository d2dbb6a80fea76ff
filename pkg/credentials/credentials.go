package credentials

import (
	"os"
	"strings"

	"github.com/dmitrymomot/dbprobe/pkg/config"
)

// DefaultDriver is used when driver_<NAME> is not set.
const DefaultDriver = "oracle"

// Variable name prefixes. The full name is prefix + connection name.
const (
	UserPrefix     = "user_"
	PasswordPrefix = "password_"
	DSNPrefix      = "dsn_"
	DriverPrefix   = "driver_"
)

// Set is the validated credential tuple of a single connection name.
type Set struct {
	Name     string
	User     string
	Password Secret
	DSN      string
	Driver   string
}

// Map indexes credential sets by connection name.
type Map map[string]Set

// Names returns the connection names in the map, in no particular order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	return names
}

// group is the per-name shape parsed from the rewritten environment.
type group struct {
	User     string `env:"user,required,notEmpty"`
	Password string `env:"password,required,notEmpty"`
	DSN      string `env:"dsn,required,notEmpty"`
	Driver   string `env:"driver" envDefault:"oracle"`
}

// LookupFunc reads a single environment variable.
type LookupFunc func(key string) (string, bool)

// Loader reads credential groups for a fixed list of connection names.
type Loader struct {
	names  []string
	lookup LookupFunc
}

// NewLoader creates a loader for the given connection names. Blank and
// duplicate names are dropped; order is preserved.
func NewLoader(names ...string) *Loader {
	return &Loader{
		names:  normalizeNames(names),
		lookup: os.LookupEnv,
	}
}

// WithLookup returns a copy of the loader reading variables through fn.
func (l *Loader) WithLookup(fn LookupFunc) *Loader {
	if fn == nil {
		return l
	}
	cp := *l
	cp.lookup = fn
	return &cp
}

// Names returns the connection names the loader validates.
func (l *Loader) Names() []string {
	return append([]string(nil), l.names...)
}

// Load reads and validates every configured connection name. It fails on the
// first incomplete group with a *ConfigurationError.
func (l *Loader) Load() (Map, error) {
	out := make(Map, len(l.names))
	for _, name := range l.names {
		set, err := l.read(name)
		if err != nil {
			return nil, err
		}
		out[name] = set
	}
	return out, nil
}

func (l *Loader) read(name string) (Set, error) {
	keys := map[string]string{
		"user":     UserPrefix + name,
		"password": PasswordPrefix + name,
		"dsn":      DSNPrefix + name,
		"driver":   DriverPrefix + name,
	}

	environ := make(map[string]string, len(keys))
	for short, full := range keys {
		if v, ok := l.lookup(full); ok {
			environ[short] = v
		}
	}

	var g group
	if err := config.LoadFrom(&g, environ); err != nil {
		missing := config.MissingKeys(err)
		if len(missing) == 0 {
			missing = emptyRequired(environ)
		}
		full := make([]string, 0, len(missing))
		for _, short := range missing {
			full = append(full, keys[short])
		}
		return Set{}, &ConfigurationError{Name: name, Missing: full}
	}

	driver := strings.ToLower(strings.TrimSpace(g.Driver))
	if driver == "" {
		driver = DefaultDriver
	}

	return Set{
		Name:     name,
		User:     g.User,
		Password: Secret(g.Password),
		DSN:      g.DSN,
		Driver:   driver,
	}, nil
}

// emptyRequired is used when the parser error carries no key information.
func emptyRequired(environ map[string]string) []string {
	var out []string
	for _, short := range []string{"user", "password", "dsn"} {
		if environ[short] == "" {
			out = append(out, short)
		}
	}
	return out
}

// Load reads the credential groups of the given names from the process
// environment.
func Load(names ...string) (Map, error) {
	return NewLoader(names...).Load()
}

// NamesFromEnv returns the connection names listed in DB_CONNECTIONS
// (comma separated), or MEDIN when the variable is unset or blank.
func NamesFromEnv() []string {
	return ParseNames(os.Getenv("DB_CONNECTIONS"))
}

// ParseNames splits a comma separated list of connection names. An empty list
// yields the default MEDIN connection.
func ParseNames(list string) []string {
	names := normalizeNames(strings.Split(list, ","))
	if len(names) == 0 {
		return []string{"MEDIN"}
	}
	return names
}

func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
