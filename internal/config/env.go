// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/joho/godotenv"
)

// ErrInvalidEnvFile is returned when the dotenv file cannot be read or parsed.
var ErrInvalidEnvFile = errors.New("invalid env file")

// LoadEnvFile parses the dotenv file at path. A missing file yields no variables.
func LoadEnvFile(ctx context.Context, path string) (map[string]string, error) {
	f, err := FsFactory().Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEnvFile, path, err)
	}

	defer f.Close() //nolint:errcheck

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEnvFile, path, err)
	}

	ctxlog.Debug(ctx, "env file loaded", "file", path, "variables", len(vars))

	return vars, nil
}

// CommandEnv merges the dotenv variables with the settings variables.
// Settings win on conflicts.
func CommandEnv(settings *Settings, dotenv map[string]string) map[string]string {
	env := make(map[string]string, len(dotenv))
	maps.Copy(env, dotenv)

	if settings != nil {
		maps.Copy(env, settings.Env)
	}

	return env
}
