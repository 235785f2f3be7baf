// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lister

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by Render.
type Styles struct {
	Heading    lipgloss.Style
	Identifier lipgloss.Style
	Rule       lipgloss.Style
}

// DefaultStyles returns the coloured styles.
func DefaultStyles() Styles {
	return Styles{
		Heading:    lipgloss.NewStyle().Bold(true),
		Identifier: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Rule:       lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Heading:    lipgloss.NewStyle(),
		Identifier: lipgloss.NewStyle(),
		Rule:       lipgloss.NewStyle(),
	}
}
