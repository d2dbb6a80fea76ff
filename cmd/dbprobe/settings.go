package main

// settings are read from the environment after any --env-file is loaded.
type settings struct {
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	LogFile       string `env:"LOG_FILE" envDefault:"logs/app.log"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"debug"`
	Connections   string `env:"DB_CONNECTIONS" envDefault:"MEDIN"`
}
