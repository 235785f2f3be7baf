// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("with custom logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := New(context.Background(), logger)
		assert.Same(t, logger, Logger(ctx))
	})

	t.Run("with nil logger should use default", func(t *testing.T) {
		ctx := New(context.Background(), nil)
		assert.Same(t, DefaultLogger, Logger(ctx))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           context.Context
		expectDefault bool
	}{
		{
			name:          "context with logger",
			ctx:           New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
			expectDefault: false,
		},
		{
			name:          "context without logger",
			ctx:           context.Background(),
			expectDefault: true,
		},
		{
			name:          "context with nil logger value",
			ctx:           context.WithValue(context.Background(), loggerKey{}, nil),
			expectDefault: true,
		},
		{
			name:          "context with wrong type value",
			ctx:           context.WithValue(context.Background(), loggerKey{}, "not a logger"),
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.ctx)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.expectDefault, logger == DefaultLogger)
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "info", logFunc: Info, message: "test info message", expected: "INFO"},
		{name: "debug", logFunc: Debug, message: "test debug message", expected: "DEBUG"},
		{name: "warn", logFunc: Warn, message: "test warning message", expected: "WARN"},
		{name: "error", logFunc: Error, message: "test error message", expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "identifier", "deploy")

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "identifier=deploy")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		envValue string
		want     slog.Level
	}{
		{envValue: "DEBUG", want: slog.LevelDebug},
		{envValue: "debug", want: slog.LevelDebug},
		{envValue: "INFO", want: slog.LevelInfo},
		{envValue: "WARN", want: slog.LevelWarn},
		{envValue: "ERROR", want: slog.LevelError},
		{envValue: "INVALID", want: slog.LevelWarn},
		{envValue: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("value "+tt.envValue, func(t *testing.T) {
			t.Setenv(LogLevelEnvVar, tt.envValue)
			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		envValue string
		want     *slog.Logger
	}{
		{envValue: "json", want: JSONLogger},
		{envValue: " JSON ", want: JSONLogger},
		{envValue: "text", want: DefaultLogger},
		{envValue: "", want: DefaultLogger},
	}

	for _, tt := range tests {
		t.Run("value "+tt.envValue, func(t *testing.T) {
			t.Setenv(LogFormatEnvVar, tt.envValue)
			assert.Same(t, tt.want, FromEnv())
		})
	}
}

func TestLevelVarControlsDefaultLoggers(t *testing.T) {
	original := LevelVar.Level()
	t.Cleanup(func() { LevelVar.Set(original) })

	LevelVar.Set(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, JSONLogger.Enabled(context.Background(), slog.LevelWarn))

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))
}

func TestLoggingWithDefaultLogger(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		Debug(ctx, "test debug")
		Info(ctx, "test info")
	})
}
