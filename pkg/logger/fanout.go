package logger

import (
	"context"
	"errors"
	"log/slog"
)

// FanoutHandler dispatches every record to each wrapped handler that is
// enabled for the record's level.
type FanoutHandler struct {
	handlers []slog.Handler
}

// NewFanoutHandler creates a handler writing to all non-nil handlers.
func NewFanoutHandler(handlers ...slog.Handler) slog.Handler {
	clean := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			clean = append(clean, h)
		}
	}
	return &FanoutHandler{handlers: clean}
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, next := range h.handlers {
		if next.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes a clone of the record to each enabled handler so that one
// handler adding attributes cannot affect the others.
func (h *FanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, next := range h.handlers {
		if !next.Enabled(ctx, rec.Level) {
			continue
		}
		if err := next.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: next}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: next}
}
