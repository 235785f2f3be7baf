// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker keeps termination signals from killing fabrun while a
// stored command runs in the foreground.
//
// The terminal delivers Ctrl-C to the whole process group, so the child sees the
// first signal on its own and fabrun stays alive to report how it exited. A second
// signal of the same type cancels the context, which kills the child.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/HTA86/fabrun/internal/ctxlog"
)

// os.Interrupt is SIGINT on Unix.
var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New creates a channel that receives the given signals, or the termination signals if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops relaying signals to ch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
