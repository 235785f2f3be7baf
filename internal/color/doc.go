// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether fabrun writes ANSI colour to the terminal and
// wraps strings in colour codes when it does.
//
// NO_COLOR always wins. FORCE_COLOR enables colour even when stderr is not a
// terminal. Otherwise colour follows terminal detection on stderr, which is
// where fabrun writes its diagnostics.
package color
