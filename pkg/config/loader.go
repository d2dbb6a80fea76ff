package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads variables from the given .env files into the process
// environment. Without arguments the default .env in the working directory is
// loaded. Files listed later take precedence over earlier ones; variables that
// are already set in the process environment are overwritten.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses the process environment into the provided configuration struct
// based on its `env` field tags.
//
// The default .env file is read once per process if it exists. The
// environment itself is parsed again on every call, so changes made with
// os.Setenv are always visible.
//
// Example:
//
//	type AppConfig struct {
//		LogFile  string `env:"LOG_FILE" envDefault:"logs/app.log"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadFrom parses the given key/value set instead of the process environment.
// It is used to parse variable groups whose names are computed at runtime.
func LoadFrom[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MissingKeys extracts the names of required variables that were absent or
// empty from an error returned by Load or LoadFrom. Keys are returned in the
// order in which the parser reported them.
func MissingKeys(err error) []string {
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}

	keys := make([]string, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		var empty env.EmptyEnvVarError
		switch {
		case errors.As(e, &notSet):
			keys = append(keys, notSet.Key)
		case errors.As(e, &empty):
			keys = append(keys, empty.Key)
		}
	}
	return keys
}
