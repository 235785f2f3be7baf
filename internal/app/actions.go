// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/HTA86/fabrun/internal/color"
	"github.com/HTA86/fabrun/internal/config"
	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/HTA86/fabrun/internal/executor"
	"github.com/HTA86/fabrun/internal/lister"
	"github.com/HTA86/fabrun/internal/store"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"
)

func listAction(ctx context.Context, cmd *cli.Command, st *store.Store, settings *config.Settings) error {
	entries, err := st.List(ctx)
	if err != nil {
		ctxlog.Error(ctx, "cannot list commands", "store", st.Root(), "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	opts := lister.Options{
		Width:  settings.Width,
		Plain:  cmd.Bool(plainFlag),
		Styles: lister.PlainStyles(),
	}

	if opts.Width == 0 {
		opts.Width = lister.DefaultWidth
		if f, ok := cmd.Writer.(*os.File); ok {
			opts.Width = lister.TerminalWidth(f)
		}
	}

	if color.EnabledFor(cmd.Writer) {
		opts.Styles = lister.DefaultStyles()
	}

	return lister.Render(cmd.Writer, entries, opts) //nolint:wrapcheck
}

func checkAction(ctx context.Context, cmd *cli.Command, st *store.Store) error {
	usable, err := st.Check(ctx)
	if err == nil {
		_, err := fmt.Fprintln(cmd.Writer, color.ColorizeFor(cmd.Writer, fmt.Sprintf("%d commands OK", usable), color.FgGreen))
		return err //nolint:wrapcheck
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		ctxlog.Error(ctx, "cannot check commands", "store", st.Root(), "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	for _, e := range merr.Errors {
		fmt.Fprintf(cmd.Writer, " - %s\n", color.ColorizeFor(cmd.Writer, e.Error(), color.FgRed)) //nolint:errcheck
	}

	fmt.Fprintf(cmd.Writer, "%d commands OK, %d unusable\n", usable, len(merr.Errors)) //nolint:errcheck

	return cli.Exit(cliExitStr, 1)
}

func runAction(
	ctx context.Context,
	cmd *cli.Command,
	st *store.Store,
	paths config.Paths,
	settings *config.Settings,
	id string,
) error {
	logger := ctxlog.Logger(ctx).With("identifier", id)

	command, err := st.Resolve(ctx, id)
	if err != nil {
		logger.Error("command not found or invalid",
			"path", st.CommandPath(id),
			"store", st.Root(),
			"error", err,
		)

		return nil
	}

	if cmd.Bool(describeFlag) {
		fmt.Fprintln(cmd.ErrWriter, st.Describe(ctx, id)) //nolint:errcheck
	}

	dotenv, err := config.LoadEnvFile(ctx, paths.Env)
	if err != nil {
		logger.Error("cannot load env file", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	ex := executor.New(
		executor.WithShell(settings.Shell),
		executor.WithEnv(config.CommandEnv(settings, dotenv)),
		executor.WithCapture(settings.Capture || cmd.Bool(captureFlag)),
		executor.WithStdin(cmd.Reader),
		executor.WithStdout(cmd.Writer),
		executor.WithStderr(cmd.ErrWriter),
	)

	res, err := ex.Run(ctx, command)
	if err == nil {
		logger.Debug("command finished", "duration", res.Duration)
		return nil
	}

	logger.Error("command failed", "exitCode", res.ExitCode, "error", err)

	switch {
	case settings.MirrorExitCode || cmd.Bool(mirrorExitCodeFlag):
		return cli.Exit(cliExitStr, mirroredExitCode(res.ExitCode))
	case errors.Is(err, executor.ErrProcessKilled):
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// mirroredExitCode maps a child exit code to ours. Children that never started or
// were killed report -1, which becomes 1.
func mirroredExitCode(code int) int {
	if code <= 0 {
		return 1
	}

	return code
}
