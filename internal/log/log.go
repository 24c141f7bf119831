// Package log wires log/slog with attributes carried through
// context.Context, so every component logging inside a run inherits the
// run-wide attributes set once by the command layer.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type ctxKey struct{}

// ContextAttrs returns a context carrying attrs on top of any attributes
// already stored there. The attributes are added to every record logged
// through a handler created by NewContextHandler.
func ContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

type contextHandler struct {
	h slog.Handler
}

// NewContextHandler wraps h so that attributes stored via ContextAttrs are
// appended to each record.
func NewContextHandler(h slog.Handler) slog.Handler {
	return contextHandler{h: h}
}

func (c contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return c.h.Enabled(ctx, level)
}

func (c contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}
	return c.h.Handle(ctx, record)
}

func (c contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h: c.h.WithAttrs(attrs)}
}

func (c contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h: c.h.WithGroup(name)}
}

// New returns a logger writing JSON to stderr, at Debug level when verbose.
func New(verbose bool) *slog.Logger {
	return NewWriter(os.Stderr, verbose)
}

// NewWriter is New with an explicit sink.
func NewWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewContextHandler(base))
}

// Output maps the configured log destination name to a writer. Names
// "stderr", "stdout" and "discard" are recognized, anything else is treated
// as a file path to append to.
func Output(name string) (io.Writer, error) {
	switch name {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	default:
		f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log destination: %w", err)
		}
		return f, nil
	}
}
