// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/HTA86/fabrun/internal/color"
	"github.com/TylerBrock/colorjson"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that writes one human-readable line per record:
// timestamp, level, message and the remaining attributes as compact JSON.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	colour           bool
	outputEmptyAttrs bool
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
// Output goes to stderr unless WithDestinationWriter is given.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:      handlerOptions.ReplaceAttr,
		m:      &sync.Mutex{},
		writer: os.Stderr,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables color output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables color output when the color package allows it.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		h.colour = color.Enabled()
	}
}

// WithOutputEmptyAttrs writes "{}" for records without attributes.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	c.h = h.h.WithAttrs(attrs)

	return c
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := h.clone()
	c.h = h.h.WithGroup(name)

	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		h:                h.h,
		r:                h.r,
		b:                h.b,
		m:                h.m,
		writer:           h.writer,
		colour:           h.colour,
		outputEmptyAttrs: h.outputEmptyAttrs,
	}
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	level := h.replaced(slog.Attr{Key: slog.LevelKey, Value: slog.AnyValue(r.Level)})
	if level != "" {
		level = h.paint(level+":", colourFor(r.Level))
	}

	timestamp := h.replaced(slog.Attr{Key: slog.TimeKey, Value: slog.StringValue(r.Time.Format(TimeFormat))})
	if timestamp != "" {
		timestamp = h.paint(timestamp, color.FgWhite)
	}

	msg := h.replaced(slog.Attr{Key: slog.MessageKey, Value: slog.StringValue(r.Message)})
	if msg != "" {
		msg = h.paint(msg, color.FgHiWhite)
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		f := colorjson.NewFormatter()
		f.DisabledColor = !h.colour

		attrsAsBytes, err = f.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	out := strings.Builder{}

	for _, part := range []string{timestamp, level, msg} {
		if part == "" {
			continue
		}

		out.WriteString(part)
		out.WriteString(" ")
	}

	out.Write(attrsAsBytes)
	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// replaced runs the user's ReplaceAttr over a built-in attribute.
// An empty result means the attribute was dropped.
func (h *PrettyHandler) replaced(a slog.Attr) string {
	if h.r != nil {
		a = h.r([]string{}, a)
	}

	if a.Equal(slog.Attr{}) {
		return ""
	}

	return a.Value.String()
}

func (h *PrettyHandler) paint(s string, code color.Code) string {
	if !h.colour {
		return s
	}

	return color.Wrap(s, code)
}

func (h *PrettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	if err := json.Unmarshal(h.b.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
