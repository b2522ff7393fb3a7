// Package xlog is a context wrapper around slog.Logger.
package xlog

import (
	"context"
	"io"
	"os"
	"testing"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"cdr.dev/slog/sloggers/slogtest"
)

var _default = slog.Make(sloghuman.Sink(os.Stderr)).Named("default")

type loggerKey struct{}

func from(ctx context.Context) slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(slog.Logger)
	if !ok {
		return _default
	}
	return l
}

// With returns a copy of ctx carrying l.
func With(ctx context.Context, l slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithTB calls With with the result of slogtest.Make.
func WithTB(ctx context.Context, t testing.TB) context.Context {
	return With(ctx, slogtest.Make(t, nil).Leveled(slog.LevelDebug))
}

// Human attaches a human-readable logger writing to w. Debug output is
// enabled by verbose or DEBUG=1.
func Human(ctx context.Context, w io.Writer, verbose bool) context.Context {
	l := slog.Make(sloghuman.Sink(w)).Named("lvshape")
	if verbose || os.Getenv("DEBUG") == "1" {
		l = l.Leveled(slog.LevelDebug)
	}
	return With(ctx, l)
}

func Debug(ctx context.Context, msg string, fields ...slog.Field) {
	slog.Helper()
	from(ctx).Debug(ctx, msg, fields...)
}

func Sync(ctx context.Context) {
	from(ctx).Sync()
}
