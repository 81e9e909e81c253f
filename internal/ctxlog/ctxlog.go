// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
)

// LevelEnvVar is the environment variable that controls the log level.
// Recognized values are DEBUG, INFO, WARN and ERROR; anything else
// falls back to WARN.
const LevelEnvVar = "DMUTIL_LOG_LEVEL"

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

type loggerKey struct{}

// LevelVar holds the process-wide log level. It may be adjusted at runtime.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is the logger used when a context carries none.
var DefaultLogger = slog.New(NewPretty(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithWriter(os.Stderr),
))

// JSONLogger emits structured JSON, for use when output is consumed by
// another program rather than a human.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(ParseLevel(os.Getenv(LevelEnvVar)))
}

// New returns a context carrying the given logger.
// A nil logger stores the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by ctx, or the default logger.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the logger carried by ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the logger carried by ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the logger carried by ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the logger carried by ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// ParseLevel maps a level name to a slog.Level, defaulting to WARN.
func ParseLevel(s string) slog.Level {
	switch s {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
