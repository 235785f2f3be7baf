// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lister

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HTA86/fabrun/internal/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// DefaultWidth is the width budget when none is configured and no terminal is attached.
	DefaultWidth = 80
	// Heading precedes the listing.
	Heading = "Available commands:"
	// Empty is printed when the store holds no entries.
	Empty = "No commands available."

	ellipsis     = "..."
	ruleChar     = "─"
	columnGap    = "  "
	minDescWidth = 10
)

// Options controls Render.
type Options struct {
	// Width is the total line budget. Zero means DefaultWidth.
	Width int
	// Plain prints " - <identifier>" lines without descriptions.
	Plain bool
	// Styles applied to the heading, identifiers and rules.
	Styles Styles
}

// TerminalWidth returns the column count of f when it is a terminal, else DefaultWidth.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd()) //nolint:gosec

	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return w
}

// Render writes entries to w.
func Render(w io.Writer, entries []store.Entry, opts Options) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, Empty)
		return err //nolint:wrapcheck
	}

	var b strings.Builder

	b.WriteString(opts.Styles.Heading.Render(Heading))
	b.WriteByte('\n')

	if opts.Plain {
		for _, e := range entries {
			fmt.Fprintf(&b, " - %s\n", e.Identifier)
		}

		_, err := io.WriteString(w, b.String())

		return err //nolint:wrapcheck
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	idWidth := 0
	for _, e := range entries {
		idWidth = max(idWidth, runewidth.StringWidth(e.Identifier))
	}

	descWidth := max(width-idWidth-lipgloss.Width(columnGap), minDescWidth)

	type line struct {
		id, desc string
	}

	lines := make([]line, 0, len(entries))
	longest := 0

	for _, e := range entries {
		desc := runewidth.Truncate(flatten(e.Description), descWidth, ellipsis)
		id := runewidth.FillRight(e.Identifier, idWidth)
		longest = max(longest, lipgloss.Width(id+columnGap+desc))
		lines = append(lines, line{id: id, desc: desc})
	}

	rule := opts.Styles.Rule.Render(strings.Repeat(ruleChar, min(width, longest)))

	for _, l := range lines {
		b.WriteString(rule)
		b.WriteByte('\n')
		b.WriteString(opts.Styles.Identifier.Render(l.id))
		b.WriteString(columnGap)
		b.WriteString(l.desc)
		b.WriteByte('\n')
	}

	b.WriteString(rule)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err //nolint:wrapcheck
}

// flatten collapses all whitespace, including newlines, to single spaces.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
