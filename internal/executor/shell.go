// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"fmt"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/HTA86/fabrun/internal/ctxlog"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // System32 is the directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // cmdExe is the name of the command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Default shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
	shellEnv             = "SHELL"
)

// shellCommand returns the interpreter path and its arguments for command.
// A configured shell wins over $SHELL, which wins over the platform default.
func shellCommand(ctx context.Context, configured, command string) (string, []string) {
	if runtime.GOOS == GOOSWindows {
		return defaultShell(ctx, configured), []string{commandSwitchWindows, command}
	}

	return defaultShell(ctx, configured), []string{commandSwitchUnix, command}
}

func defaultShell(ctx context.Context, configured string) string {
	if configured != "" {
		ctxlog.Debug(ctx, "using configured shell", "shell", configured)
		return configured
	}

	if runtime.GOOS == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv(shellEnv); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}

// mergeEnv appends the extra variables that are not already present in base.
// Extras are appended in key order.
func mergeEnv(base []string, extra map[string]string) []string {
	env := slices.Clone(base)
	if len(extra) == 0 {
		return env
	}

	present := make(map[string]struct{}, len(base))

	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		present[envKey(k)] = struct{}{}
	}

	for _, k := range slices.Sorted(maps.Keys(extra)) {
		if _, ok := present[envKey(k)]; ok {
			continue
		}

		env = append(env, k+"="+extra[k])
	}

	return env
}

// envKey normalises variable names on platforms where they are case-insensitive.
func envKey(k string) string {
	if runtime.GOOS == GOOSWindows {
		return strings.ToUpper(k)
	}

	return k
}
