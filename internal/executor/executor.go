// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/HTA86/fabrun/internal/teewriter"
)

const (
	// MaxCaptureBytes bounds each captured stream in capture mode.
	MaxCaptureBytes = 8 * 1024 * 1024 // 8MB

	// waitDelay bounds how long Wait holds on to output pipes still open in
	// background grandchildren once the shell has exited.
	waitDelay = 2 * time.Second
)

// Result describes a finished run.
// StdOut and StdErr are only populated in capture mode.
type Result struct {
	Command   string
	Shell     string
	ExitCode  int
	StdOut    []byte
	StdErr    []byte
	Truncated bool
	Duration  time.Duration
}

// Executor runs command text through a shell.
type Executor struct {
	shell   string
	env     map[string]string
	capture bool
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithShell sets the interpreter. Empty means $SHELL or the platform default.
func WithShell(shell string) Option {
	return func(e *Executor) {
		e.shell = shell
	}
}

// WithEnv adds variables to the child environment. Variables already set in the
// process environment are kept.
func WithEnv(env map[string]string) Option {
	return func(e *Executor) {
		e.env = env
	}
}

// WithCapture selects capture-then-print instead of streaming.
func WithCapture(capture bool) Option {
	return func(e *Executor) {
		e.capture = capture
	}
}

// WithStdin sets the reader connected to the child stdin.
func WithStdin(r io.Reader) Option {
	return func(e *Executor) {
		e.stdin = r
	}
}

// WithStdout sets the writer receiving the child stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Executor) {
		e.stdout = w
	}
}

// WithStderr sets the writer receiving the child stderr.
func WithStderr(w io.Writer) Option {
	return func(e *Executor) {
		e.stderr = w
	}
}

// New returns an Executor wired to the process stdio unless overridden.
func New(opts ...Option) *Executor {
	e := &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes command and waits for it to finish.
// The returned Result is never nil. The error is a *FailureError when the command
// is blank, could not be started, was killed or exited non-zero.
// Cancelling ctx kills the child.
func (e *Executor) Run(ctx context.Context, command string) (*Result, error) {
	res := &Result{
		Command:  command,
		ExitCode: -1,
	}

	if strings.TrimSpace(command) == "" {
		return res, &FailureError{Command: command, ExitCode: -1, Err: ErrEmptyCommand}
	}

	shell, args := shellCommand(ctx, e.shell, command)
	res.Shell = shell

	logger := ctxlog.Logger(ctx).With("shell", shell)

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Stdin = e.stdin
	cmd.Env = mergeEnv(os.Environ(), e.env)
	cmd.WaitDelay = waitDelay
	cmd.Cancel = func() error {
		logger.Info("context done, killing process", "pid", cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	var outTee, errTee *teewriter.LastLineTeeWriter

	if e.capture {
		outTee = teewriter.NewLastLineTeeWriter(nil, MaxCaptureBytes)
		errTee = teewriter.NewLastLineTeeWriter(nil, MaxCaptureBytes)
		cmd.Stdout = outTee
	} else {
		// Nothing is captured while streaming; only the tail line is tracked.
		errTee = teewriter.NewLastLineTeeWriter(e.stderr, 0)
		cmd.Stdout = e.stdout
	}

	cmd.Stderr = errTee

	logger.Debug("starting process", "capture", e.capture)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		logger.Debug("process start failed", "error", err)

		return res, &FailureError{
			Command:  command,
			ExitCode: -1,
			Err:      errors.Join(ErrCouldNotStartProcess, err),
		}
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	waitErr := cmd.Wait()
	res.Duration = time.Since(start)

	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if errors.Is(waitErr, exec.ErrWaitDelay) {
		logger.Debug("output still held open after exit", "error", waitErr)
		waitErr = nil
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "duration", res.Duration)

	stderrText := errTee.Tail()

	if e.capture {
		res.StdOut = outTee.Bytes()
		res.StdErr = errTee.Bytes()
		res.Truncated = outTee.Truncated() || errTee.Truncated()
		stderrText = strings.TrimSpace(string(res.StdErr))

		if res.Truncated {
			logger.Warn("captured output truncated", "error", ErrBufferOverflow)
		}

		if _, err := e.stdout.Write(res.StdOut); err != nil {
			logger.Debug("failed to write captured stdout", "error", err)
		}
	}

	switch {
	case ctx.Err() != nil:
		res.ExitCode = -1

		return res, &FailureError{
			Command:  command,
			ExitCode: -1,
			Stderr:   stderrText,
			Err:      errors.Join(ErrProcessKilled, ctx.Err()),
		}
	case waitErr != nil || res.ExitCode != 0:
		return res, &FailureError{
			Command:  command,
			ExitCode: res.ExitCode,
			Stderr:   stderrText,
			Err:      waitErr,
		}
	}

	return res, nil
}
