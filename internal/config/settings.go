// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var (
	// ErrReadSettings is returned when the settings file exists but cannot be read.
	ErrReadSettings = errors.New("failed to read settings file")
	// ErrInvalidSettings is returned when the settings file cannot be decoded or holds invalid values.
	ErrInvalidSettings = errors.New("invalid settings file")
)

// Settings is the content of config.yaml. The zero value holds the defaults.
type Settings struct {
	// Shell runs the stored commands. Empty means $SHELL, then /bin/sh.
	Shell string `yaml:"shell,omitempty"`
	// Capture collects output and prints it after the command finishes instead of streaming it.
	Capture bool `yaml:"capture,omitempty"`
	// MirrorExitCode makes fabrun exit with the command's exit code.
	MirrorExitCode bool `yaml:"mirror_exit_code,omitempty"`
	// Width is the listing width budget. Zero means terminal width, then 80.
	Width int `yaml:"width,omitempty"`
	// Env is added to the environment of every command.
	Env map[string]string `yaml:"env,omitempty"`
}

// LoadSettings reads the settings file at path.
// A missing file yields the defaults.
func LoadSettings(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.Logger(ctx).With("settings", path)

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("no settings file, using defaults")
			return &Settings{}, nil
		}

		return nil, errors.Join(ErrReadSettings, err)
	}

	s := &Settings{}
	if err := yaml.UnmarshalWithOptions(data, s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, path, err)
	}

	if s.Width < 0 {
		return nil, fmt.Errorf("%w: %s: width must not be negative, got %d", ErrInvalidSettings, path, s.Width)
	}

	logger.Debug("settings loaded", "shell", s.Shell, "capture", s.Capture, "mirrorExitCode", s.MirrorExitCode)

	return s, nil
}
