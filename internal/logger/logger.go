package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Initialize installs the pretty CLI handler as the default logger on stderr.
func Initialize(debug, verbose bool) {
	slog.SetDefault(New(os.Stderr, debug, verbose))
}

// New builds a logger writing to w. Warn is the default level so prompts stay clean.
func New(w io.Writer, debug, verbose bool) *slog.Logger {
	level := slog.LevelWarn

	if debug {
		level = slog.LevelDebug
	} else if verbose {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	return slog.New(NewPrettyHandler(w, opts))
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	l := FromContext(ctx).With(args...)
	return WithLogger(ctx, l)
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	FromContext(ctx).Error(msg, args...)
}
