// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// AppDir is the directory name under the configuration root.
	AppDir = "fabrun"
	// CommandsDir is the command store directory name under AppDir.
	CommandsDir = "commands"
	// SettingsFile is the settings file name under AppDir.
	SettingsFile = "config.yaml"
	// EnvFile is the dotenv file name under AppDir.
	EnvFile = ".env"

	// CommandsDirEnvVar overrides the command store location.
	CommandsDirEnvVar = "FABRUN_COMMANDS_DIR"
	// SettingsFileEnvVar overrides the settings file location.
	SettingsFileEnvVar = "FABRUN_CONFIG"
)

// ErrNoConfigHome is returned when neither XDG_CONFIG_HOME nor the home directory can be determined.
var ErrNoConfigHome = errors.New("cannot determine user configuration directory")

// Paths holds every location fabrun reads from.
type Paths struct {
	Root     string // <config-root>/fabrun
	Commands string // command store
	Settings string // config.yaml
	Env      string // .env
}

// ConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Join(ErrNoConfigHome, err)
	}

	return filepath.Join(home, ".config"), nil
}

// DefaultPaths returns the standard layout under ConfigHome.
func DefaultPaths() (Paths, error) {
	home, err := ConfigHome()
	if err != nil {
		return Paths{}, err
	}

	return PathsFrom(filepath.Join(home, AppDir)), nil
}

// PathsFrom returns the standard layout under root.
func PathsFrom(root string) Paths {
	return Paths{
		Root:     root,
		Commands: filepath.Join(root, CommandsDir),
		Settings: filepath.Join(root, SettingsFile),
		Env:      filepath.Join(root, EnvFile),
	}
}

// WithCommands returns a copy with the command store replaced when dir is not empty.
func (p Paths) WithCommands(dir string) Paths {
	if dir != "" {
		p.Commands = filepath.Clean(dir)
	}

	return p
}

// WithSettings returns a copy with the settings file replaced when file is not empty.
func (p Paths) WithSettings(file string) Paths {
	if file != "" {
		p.Settings = filepath.Clean(file)
	}

	return p
}
