// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

const examples = `Example usage:
  fabrun --list               # List all available commands
  fabrun -l --plain           # List identifiers only
  fabrun git_change_2weeks    # Run the git_change_2weeks command
  fabrun -d deploy            # Show the description of deploy, then run it
  fabrun --check              # Check every command in the store
  fabrun --version            # Show the program's version`

// printUsage writes the short help shown when fabrun is run without arguments.
func printUsage(cmd *cli.Command) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s\n\n", cmd.UsageText)
	fmt.Fprintf(&b, "Run a command saved in the fabrun command store.\n\nOptions:\n")

	for _, f := range cmd.VisibleFlags() {
		fmt.Fprintf(&b, "  %s\n", f.String())
	}

	fmt.Fprintf(&b, "\n%s\n", examples)

	_, err := fmt.Fprint(cmd.Writer, b.String())

	return err //nolint:wrapcheck
}
