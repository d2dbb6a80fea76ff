// Package config parses env-tagged structs with github.com/caarlos0/env/v11
// and loads .env files with github.com/joho/godotenv.
//
//	type settings struct {
//	    LogFile string `env:"LOG_FILE" envDefault:"logs/app.log"`
//	}
//
//	if err := config.LoadEnv("deploy/probe.env"); err != nil {
//	    return err
//	}
//	var s settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// Load reads the process environment; LoadFrom reads an explicit key/value
// set, which is how groups of variables with runtime-computed names are
// parsed. Results are never cached.
//
// Required variables that are absent or empty are all reported by the same
// error, and MissingKeys lists them. Errors match ErrParsingConfig,
// ErrLoadingEnvFile or ErrNilPointer with errors.Is.
package config
