// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teewriter

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxTailBytes bounds the unterminated line kept for Tail.
const MaxTailBytes = 4 * 1024

// LastLineTeeWriter forwards writes to a destination, captures up to a maximum
// number of bytes and tracks the last non-blank line.
// Both '\n' and '\r' end a line, so carriage-return progress output is tracked
// as a sequence of lines.
// It is safe for concurrent use.
type LastLineTeeWriter struct {
	dst       io.Writer
	buf       bytes.Buffer
	max       int
	truncated bool
	lastLine  string
	partial   bytes.Buffer // data after the last line break, at most MaxTailBytes
	mu        sync.RWMutex
}

// NewLastLineTeeWriter creates a writer forwarding to dst. A nil dst discards.
// At most maxBytes are kept in the capture buffer; zero keeps none.
func NewLastLineTeeWriter(dst io.Writer, maxBytes int) *LastLineTeeWriter {
	if dst == nil {
		dst = io.Discard
	}

	return &LastLineTeeWriter{
		dst: dst,
		max: max(maxBytes, 0),
	}
}

// Write implements io.Writer. Data beyond the capture limit is still forwarded
// to the destination and still updates line tracking.
func (lt *LastLineTeeWriter) Write(p []byte) (int, error) {
	n, err := lt.dst.Write(p)

	if n > 0 {
		lt.mu.Lock()
		lt.capture(p[:n])
		lt.processNewData(p[:n])
		lt.mu.Unlock()
	}

	return n, err //nolint:wrapcheck
}

// capture must be called with the write lock held.
func (lt *LastLineTeeWriter) capture(p []byte) {
	room := lt.max - lt.buf.Len()
	if room >= len(p) {
		lt.buf.Write(p)
		return
	}

	if room > 0 {
		lt.buf.Write(p[:room])
	}

	lt.truncated = true
}

// processNewData must be called with the write lock held.
func (lt *LastLineTeeWriter) processNewData(data []byte) {
	for len(data) > 0 {
		i := bytes.IndexAny(data, "\r\n")
		if i < 0 {
			lt.appendPartial(data)
			return
		}

		lt.appendPartial(data[:i])
		lt.endLine()

		data = data[i+1:]
	}
}

// endLine keeps the pending line as the last line unless it is blank.
func (lt *LastLineTeeWriter) endLine() {
	if line := strings.TrimSpace(lt.partial.String()); line != "" {
		lt.lastLine = line
	}

	lt.partial.Reset()
}

// appendPartial adds p to the pending line, keeping only its last MaxTailBytes
// and never starting in the middle of a UTF-8 sequence.
func (lt *LastLineTeeWriter) appendPartial(p []byte) {
	lt.partial.Write(p)

	excess := lt.partial.Len() - MaxTailBytes
	if excess <= 0 {
		return
	}

	keep := lt.partial.Bytes()[excess:]
	for len(keep) > 0 && !utf8.RuneStart(keep[0]) {
		keep = keep[1:]
	}

	keep = bytes.Clone(keep)

	lt.partial.Reset()
	lt.partial.Write(keep)
}

// Tail returns the last non-blank line, preferring an unterminated final line.
// The result is at most MaxTailBytes long.
func (lt *LastLineTeeWriter) Tail() string {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	if p := strings.TrimSpace(lt.partial.String()); p != "" {
		return p
	}

	return lt.lastLine
}

// Bytes returns a copy of the captured data.
func (lt *LastLineTeeWriter) Bytes() []byte {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	return bytes.Clone(lt.buf.Bytes())
}

// Truncated reports whether data was dropped from the capture buffer.
func (lt *LastLineTeeWriter) Truncated() bool {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	return lt.truncated
}
