// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes human-readable lines to stderr through PrettyHandler.
// Its level comes from the FABRUN_LOG_LEVEL environment variable
// ("DEBUG", "INFO", "WARN" or "ERROR") and defaults to WARN.
package ctxlog
