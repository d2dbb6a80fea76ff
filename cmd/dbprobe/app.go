package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dbprobe/pkg/config"
	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/dbconn"
	"github.com/dmitrymomot/dbprobe/pkg/drivers"
	"github.com/dmitrymomot/dbprobe/pkg/environment"
	"github.com/dmitrymomot/dbprobe/pkg/logger"
	"github.com/dmitrymomot/dbprobe/pkg/probe"
)

// app holds what the commands share between setup and teardown.
type app struct {
	envFiles []string
	logFile  string
	logLevel string

	drivers  map[string]dbconn.Driver
	runID    string
	settings settings
	log      *slog.Logger
	closers  []io.Closer
}

func newApp() *app {
	return &app{drivers: drivers.Default()}
}

// setup loads settings and builds the logger. Problems are logged to the
// console and never abort the probe.
func (a *app) setup(ctx context.Context, stderr io.Writer) context.Context {
	var warnings []slog.Attr
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			warnings = append(warnings, slog.String("env_file", err.Error()))
		}
	}

	if err := config.Load(&a.settings); err != nil {
		warnings = append(warnings, slog.String("settings", err.Error()))
	}
	if a.logFile != "" {
		a.settings.LogFile = a.logFile
	}
	if a.logLevel != "" {
		a.settings.LogLevel = a.logLevel
	}

	env := environment.Parse(a.settings.AppEnv)
	a.runID = uuid.NewString()
	opts := []logger.Option{
		logger.WithEnvironment(env),
		logger.WithLevel(slog.LevelInfo),
		logger.WithOutput(stderr),
		logger.WithAttr(slog.String("service", "dbprobe"), slog.String("run_id", a.runID)),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}

	file, err := logger.RotatingFile(a.settings.LogFile, a.settings.LogMaxSizeMB, a.settings.LogMaxBackups)
	if err != nil {
		warnings = append(warnings, slog.String("log_file", err.Error()))
	} else {
		a.closers = append(a.closers, file)
		opts = append(opts, logger.WithFileOutput(file, logger.ParseLevel(a.settings.LogLevel, slog.LevelDebug)))
	}

	a.log = logger.New(opts...)
	logger.SetAsDefault(a.log)
	ctx = environment.WithContext(ctx, env)

	for _, w := range warnings {
		a.log.WarnContext(ctx, "setup problem, continuing with defaults", w)
	}
	return ctx
}

func (a *app) runner() *probe.Runner {
	names := credentials.ParseNames(a.settings.Connections)
	connector := dbconn.New(
		dbconn.WithLoader(credentials.NewLoader(names...).Load),
		dbconn.WithDrivers(a.drivers),
		dbconn.WithLogger(a.log.With(logger.Component("dbconn"))),
	)
	return probe.New(connector, probe.WithLogger(a.log.With(logger.Component("probe"))))
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
