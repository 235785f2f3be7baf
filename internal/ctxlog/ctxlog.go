// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/HTA86/fabrun/internal/color"
)

const (
	// LogLevelEnvVar is the environment variable read for the initial log level.
	LogLevelEnvVar = "FABRUN_LOG_LEVEL"
	// LogFormatEnvVar selects JSONLogger when set to "json".
	LogFormatEnvVar = "FABRUN_LOG_FORMAT"
)

type loggerKey struct{}

// LevelVar controls the level of DefaultLogger and JSONLogger.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a pretty text logger on stderr, used if no logger is provided.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes JSON lines to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New returns a copy of ctx carrying logger.
// If logger is nil, DefaultLogger is used.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// FromEnv returns JSONLogger when LogFormatEnvVar is "json", else DefaultLogger.
func FromEnv() *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(LogFormatEnvVar)), "json") {
		return JSONLogger
	}

	return DefaultLogger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func logLevelFromEnv() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv(LogLevelEnvVar))) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// colourFor returns the colour used for a level label.
func colourFor(level slog.Level) color.Code {
	switch {
	case level <= slog.LevelDebug:
		return color.FgWhite
	case level <= slog.LevelInfo:
		return color.FgCyan
	case level < slog.LevelWarn:
		return color.FgBlue
	case level < slog.LevelError:
		return color.FgYellow
	case level <= slog.LevelError+1:
		return color.FgRed
	default:
		return color.FgHiMagenta
	}
}
