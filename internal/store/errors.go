// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreMissing is returned when the command store directory does not exist.
	ErrStoreMissing = errors.New("command store does not exist")
	// ErrNotFound is returned when an identifier has no command.md.
	ErrNotFound = errors.New("command not found")
	// ErrEmpty is returned when command.md is blank after trimming whitespace.
	ErrEmpty = errors.New("command file is empty")
	// ErrRead is returned when command.md exists but cannot be read.
	ErrRead = errors.New("failed to read command file")

	errInvalidIdentifier = errors.New("identifier must be a single path segment")
	errIsDirectory       = errors.New("is a directory")
	errInvalidEncoding   = errors.New("content is not valid UTF-8")
)

// EntryError describes why an entry could not be resolved.
// Kind is one of ErrNotFound, ErrEmpty or ErrRead.
type EntryError struct {
	Identifier string
	Path       string
	Kind       error
	Err        error
}

func (e *EntryError) Error() string {
	msg := fmt.Sprintf("%s: %q (%s)", e.Kind, e.Identifier, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (e *EntryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
