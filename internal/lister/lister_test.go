// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lister

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/HTA86/fabrun/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(n int) string {
	return strings.Repeat(ruleChar, n)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		entries []store.Entry
		opts    Options
		want    []string
	}{
		{
			name:    "empty store",
			entries: nil,
			want:    []string{"No commands available."},
		},
		{
			name: "aligned with placeholder",
			entries: []store.Entry{
				{Identifier: "a", Description: "Does A"},
				{Identifier: "b", Description: store.NoDescription},
			},
			want: []string{
				"Available commands:",
				rule(28),
				"a  Does A",
				rule(28),
				"b  No description available.",
				rule(28),
			},
		},
		{
			name: "identifiers padded to longest",
			entries: []store.Entry{
				{Identifier: "deploy", Description: "Ship it"},
				{Identifier: "ls", Description: "List"},
			},
			want: []string{
				"Available commands:",
				rule(15),
				"deploy  Ship it",
				rule(15),
				"ls      List",
				rule(15),
			},
		},
		{
			name: "long description truncated to width",
			entries: []store.Entry{
				{Identifier: "deploy", Description: "Deploys the application to production"},
			},
			opts: Options{Width: 20},
			want: []string{
				"Available commands:",
				rule(20),
				"deploy  Deploys t...",
				rule(20),
			},
		},
		{
			name: "multi-line description flattened",
			entries: []store.Entry{
				{Identifier: "x", Description: "first line\n\n  second\tline"},
			},
			want: []string{
				"Available commands:",
				rule(25),
				"x  first line second line",
				rule(25),
			},
		},
		{
			name: "plain",
			entries: []store.Entry{
				{Identifier: "a", Description: "Does A"},
				{Identifier: "b", Description: store.NoDescription},
			},
			opts: Options{Plain: true},
			want: []string{
				"Available commands:",
				" - a",
				" - b",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := tc.opts
			opts.Styles = PlainStyles()

			require.NoError(t, Render(&buf, tc.entries, opts))
			assert.Equal(t, strings.Join(tc.want, "\n")+"\n", buf.String())
		})
	}
}

func TestRender_LinesFitWidth(t *testing.T) {
	entries := []store.Entry{
		{Identifier: "short", Description: strings.Repeat("word ", 40)},
		{Identifier: "a-much-longer-name", Description: "ünïcödé " + strings.Repeat("ß", 100)},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, entries, Options{Width: 60, Styles: PlainStyles()}))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60, line)
	}

	assert.Contains(t, buf.String(), "...")
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "width")
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, DefaultWidth, TerminalWidth(f))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "a b c", flatten("  a\n b\t\tc \r\n"))
	assert.Empty(t, flatten(" \n "))
}
