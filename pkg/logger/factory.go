package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/dbprobe/pkg/environment"
)

// Format selects the console encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
	files      []fileSink
}

type fileSink struct {
	w     io.Writer
	level slog.Level
}

// WithLevel sets the minimum level of the console output.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the console encoding. Unknown formats panic so that a
// misconfigured binary fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option { return WithFormat(FormatText) }


// WithOutput sets the console writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that add attributes taken from
// the record's context. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment picks the console encoding for env: JSON in production and
// staging, text otherwise.
func WithEnvironment(env environment.Environment) Option {
	return func(c *config) {
		switch env {
		case environment.Production, environment.Staging:
			c.format = FormatJSON
		default:
			c.format = FormatText
		}
	}
}

// WithFileOutput adds a second sink that always writes text records at its
// own minimum level, independent of the console.
func WithFileOutput(w io.Writer, level slog.Level) Option {
	return func(c *config) {
		if w != nil {
			c.files = append(c.files, fileSink{w: w, level: level})
		}
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger writing to the console (stdout, JSON, info by default)
// and to every file sink.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	consoleOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler = slog.NewJSONHandler(cfg.output, consoleOpts)
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, consoleOpts)
	}

	if len(cfg.files) > 0 {
		handlers := []slog.Handler{handler}
		for _, f := range cfg.files {
			handlers = append(handlers, slog.NewTextHandler(f.w, &slog.HandlerOptions{Level: f.level}))
		}
		handler = NewFanoutHandler(handlers...)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		handler = &contextHandler{next: handler, extractors: cfg.extractors}
	}
	return slog.New(handler)
}
