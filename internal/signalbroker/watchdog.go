// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/HTA86/fabrun/internal/ctxlog"
)

// Watch consumes sigCh until ctx is done or sigCh is closed.
// The first signal of each type is only logged; the second one calls cancel.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Logger(ctx).Warn("watchdog",
					"detail", "received second signal of type, terminating command", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Logger(ctx).Info("watchdog",
				"detail", "received first signal of type, leaving it to the command", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
