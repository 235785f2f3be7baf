// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/HTA86/fabrun/internal/config"
	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/HTA86/fabrun/internal/store"
	"github.com/urfave/cli/v3"
)

// Name is the program name.
const Name = "fabrun"

const (
	identifierArg      = "identifier"
	versionFlag        = "version"
	listFlag           = "list"
	plainFlag          = "plain"
	checkFlag          = "check"
	describeFlag       = "describe"
	captureFlag        = "capture"
	mirrorExitCodeFlag = "mirror-exit-code"
	debugFlag          = "debug"
	commandsDirFlag    = "commands-dir"
	configFlag         = "config"
	cliExitStr         = ""
)

// New returns the root command. version and commit are printed by --version.
func New(version, commit string) *cli.Command {
	a := &app{
		version: version,
		commit:  commit,
	}

	return &cli.Command{
		Name:      Name,
		Usage:     "run a saved shell command by name",
		UsageText: Name + " [options] <identifier>",
		Description: `fabrun looks up <identifier> in the command store and runs the saved
command through the system shell. Each command lives in its own directory:

  <config-root>/fabrun/commands/<identifier>/command.md   the command text
  <config-root>/fabrun/commands/<identifier>/about.md     an optional description

` + examples,
		Writer:      os.Stdout,
		ErrWriter:   os.Stderr,
		Reader:      os.Stdin,
		HideVersion: true,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      identifierArg,
				UsageText: "<identifier>",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    versionFlag,
				Aliases: []string{"v"},
				Usage:   "Show the program's version",
			},
			&cli.BoolFlag{
				Name:    listFlag,
				Aliases: []string{"l"},
				Usage:   "List all available commands",
			},
			&cli.BoolFlag{
				Name:  plainFlag,
				Usage: "With --list, print identifiers only",
			},
			&cli.BoolFlag{
				Name:    checkFlag,
				Aliases: []string{"c"},
				Usage:   "Check that every command in the store is usable",
			},
			&cli.BoolFlag{
				Name:    describeFlag,
				Aliases: []string{"d"},
				Usage:   "Print the command's description to stderr before running it",
			},
			&cli.BoolFlag{
				Name:  captureFlag,
				Usage: "Capture output and print it when the command finishes",
			},
			&cli.BoolFlag{
				Name:  mirrorExitCodeFlag,
				Usage: "Exit with the command's exit code",
			},
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:      commandsDirFlag,
				Usage:     "Read commands from `DIR` instead of the default store",
				TakesFile: true,
				Sources:   cli.EnvVars(config.CommandsDirEnvVar),
			},
			&cli.StringFlag{
				Name:      configFlag,
				Usage:     "Read settings from `FILE`",
				TakesFile: true,
				Sources:   cli.EnvVars(config.SettingsFileEnvVar),
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         a.action,
	}
}

type app struct {
	version string
	commit  string
}

func (a *app) action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(debugFlag) {
		ctxlog.LevelVar.Set(slog.LevelDebug)
	}

	if cmd.Bool(versionFlag) {
		_, err := fmt.Fprintf(cmd.Writer, "%s version %s (commit: %s)\n", Name, a.version, a.commit)
		return err //nolint:wrapcheck
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		ctxlog.Error(ctx, "cannot resolve configuration paths", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	paths = paths.WithCommands(cmd.String(commandsDirFlag)).WithSettings(cmd.String(configFlag))
	st := store.New(config.FsFactory(), paths.Commands)

	if err := st.Ensure(ctx); err != nil {
		ctxlog.Error(ctx, "cannot create command store", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	id := cmd.StringArg(identifierArg)
	list, check := cmd.Bool(listFlag), cmd.Bool(checkFlag)

	if !list && !check && id == "" {
		return printUsage(cmd)
	}

	settings, err := config.LoadSettings(ctx, paths.Settings)
	if err != nil {
		ctxlog.Error(ctx, "cannot load settings", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	switch {
	case list:
		return listAction(ctx, cmd, st, settings)
	case check:
		return checkAction(ctx, cmd, st)
	default:
		return runAction(ctx, cmd, st, paths, settings, id)
	}
}
