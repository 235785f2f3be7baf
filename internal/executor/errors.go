// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExecutionFailure is matched by every error returned from Run.
	ErrExecutionFailure = errors.New("command execution failed")
	// ErrEmptyCommand is returned when the command text is blank. Nothing is spawned.
	ErrEmptyCommand = errors.New("command is empty")
	// ErrCouldNotStartProcess is returned when the shell could not be spawned.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrProcessKilled is returned when the context was cancelled while the child ran.
	ErrProcessKilled = errors.New("process killed after cancellation")
	// ErrBufferOverflow is recorded when captured output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", MaxCaptureBytes)
)

// FailureError reports a command that could not be run or exited non-zero.
// ExitCode is -1 when the child never started or was killed.
type FailureError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *FailureError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %q", ErrExecutionFailure, e.Command)

	if e.ExitCode > 0 {
		fmt.Fprintf(&b, " exited with code %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}

	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}

	return b.String()
}

// Unwrap lets errors.Is match ErrExecutionFailure as well as the cause.
func (e *FailureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExecutionFailure}
	}

	return []error{ErrExecutionFailure, e.Err}
}
