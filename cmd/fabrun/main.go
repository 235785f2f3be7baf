// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the fabrun command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"os"

	"github.com/HTA86/fabrun"
	"github.com/HTA86/fabrun/internal/app"
	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/HTA86/fabrun/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())

	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := app.New(fabrun.Version, fabrun.Commit).Run(ctx, os.Args)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			ctxlog.Error(ctx, msg)
		}

		return exitErr.ExitCode()
	}

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		return 1
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		return 1
	}

	ctxlog.Debug(ctx, "command completed successfully")

	return 0
}
