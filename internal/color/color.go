// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	reset     = "\033[0m"
	prefix    = "\033["
	suffix    = "m"
	sbPadding = 16
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled bool

func init() {
	enabled = isColorCapable(os.Stderr)
}

// Enabled reports whether color output is enabled for stderr, where logs go.
func Enabled() bool {
	return enabled
}

// EnabledFor reports whether output written to w should be coloured.
// Only terminals qualify unless NO_COLOR or FORCE_COLOR say otherwise.
func EnabledFor(w io.Writer) bool {
	f, _ := w.(*os.File)

	return isColorCapable(f)
}

// ColorizeFor wraps str in the given codes followed by a reset when output
// written to w should be coloured. Otherwise str is returned unchanged.
func ColorizeFor(w io.Writer, str string, codes ...Code) string {
	if len(codes) == 0 || !EnabledFor(w) {
		return str
	}

	return Wrap(str, codes...)
}

// Wrap wraps str in the given codes regardless of whether color is enabled.
func Wrap(str string, codes ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func isColorCapable(f *os.File) bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}
