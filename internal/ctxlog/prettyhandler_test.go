// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/HTA86/fabrun/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestNewPrettyHandler(t *testing.T) {
	tests := []struct {
		name    string
		options *slog.HandlerOptions
		opts    []Option
	}{
		{name: "with nil options"},
		{
			name:    "with custom options",
			options: &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true},
		},
		{
			name:    "with functional options",
			options: &slog.HandlerOptions{},
			opts:    []Option{WithColour(), WithOutputEmptyAttrs()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPrettyHandler(tt.options, tt.opts...)
			require.NotNil(t, handler)
			assert.NotNil(t, handler.h)
			assert.NotNil(t, handler.b)
			assert.NotNil(t, handler.m)
			assert.NotNil(t, handler.writer, "writer defaults to stderr")
		})
	}
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		msg      string
		attrs    []any
		options  []Option
		contains []string
		absent   []string
	}{
		{
			name:     "error with attributes",
			level:    slog.LevelError,
			msg:      "command not found or invalid",
			attrs:    []any{"identifier", "deploy"},
			contains: []string{"ERROR:", "command not found or invalid", `"identifier"`, `"deploy"`},
		},
		{
			name:     "info without attributes",
			level:    slog.LevelInfo,
			msg:      "command executed successfully",
			contains: []string{"INFO:", "command executed successfully"},
			absent:   []string{"{"},
		},
		{
			name:     "empty attributes forced",
			level:    slog.LevelWarn,
			msg:      "nothing",
			options:  []Option{WithOutputEmptyAttrs()},
			contains: []string{"WARN:", "{}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tt.options...)
			logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, opts...))
			logger.Log(context.Background(), tt.level, tt.msg, tt.attrs...)

			output := buf.String()
			assert.True(t, strings.HasSuffix(output, "\n"))

			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}

			for _, s := range tt.absent {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(nil, WithDestinationWriter(&buf), WithOutputEmptyAttrs())
	logger := slog.New(handler).With("store", "/tmp/commands").WithGroup("entry")
	logger.Warn("entry unusable", "identifier", "broken")

	output := buf.String()
	assert.Contains(t, output, `"store"`)
	assert.Contains(t, output, `"entry"`)
	assert.Contains(t, output, `"broken"`)
}

func TestPrettyHandler_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case "token":
				return slog.String("token", "[REDACTED]")
			}

			return a
		},
	}, WithDestinationWriter(&buf))

	slog.New(handler).Warn("loaded env", "token", "secret", "file", ".env")

	output := buf.String()
	assert.Contains(t, output, "[REDACTED]")
	assert.NotContains(t, output, "secret")
	assert.True(t, strings.HasPrefix(output, "WARN:"), "timestamp should be dropped: %q", output)
}

func TestPrettyHandler_Colour(t *testing.T) {
	var plain, coloured bytes.Buffer

	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)

	require.NoError(t, NewPrettyHandler(nil, WithDestinationWriter(&plain)).Handle(context.Background(), record))
	require.NoError(t, NewPrettyHandler(nil, WithDestinationWriter(&coloured), WithColour()).
		Handle(context.Background(), record))

	assert.NotContains(t, plain.String(), "\033[")
	assert.Contains(t, coloured.String(), color.Wrap("ERROR:", color.FgRed))
}

func TestPrettyHandler_WriteError(t *testing.T) {
	handler := NewPrettyHandler(nil, WithDestinationWriter(failingWriter{}))
	err := handler.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0))
	require.ErrorIs(t, err, ErrIoWrite)
}

func TestSuppressDefaults(t *testing.T) {
	replace := suppressDefaults(nil)

	for _, key := range []string{slog.TimeKey, slog.LevelKey, slog.MessageKey} {
		assert.True(t, replace(nil, slog.String(key, "x")).Equal(slog.Attr{}), key)
	}

	kept := slog.String("identifier", "deploy")
	assert.True(t, replace(nil, kept).Equal(kept))

	upper := suppressDefaults(func(_ []string, a slog.Attr) slog.Attr {
		return slog.String(a.Key, strings.ToUpper(a.Value.String()))
	})
	assert.Equal(t, "DEPLOY", upper(nil, kept).Value.String())
}
