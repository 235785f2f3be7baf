// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/HTA86/fabrun/internal/ctxlog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

const (
	// CommandFile holds the command text of an entry.
	CommandFile = "command.md"
	// AboutFile holds the optional description of an entry.
	AboutFile = "about.md"
	// NoDescription is shown for entries without a usable about.md.
	NoDescription = "No description available."

	storeDirPerm = 0o755
)

// Entry is an identifier paired with its description.
type Entry struct {
	Identifier  string
	Description string
}

// Store reads command entries below Root.
type Store struct {
	fs   afero.Fs
	root string
}

// New returns a store rooted at root on fs.
func New(fs afero.Fs, root string) *Store {
	return &Store{
		fs:   fs,
		root: root,
	}
}

// Root returns the store directory.
func (s *Store) Root() string {
	return s.root
}

// CommandPath returns the command.md path for id.
func (s *Store) CommandPath(id string) string {
	return filepath.Join(s.root, id, CommandFile)
}

// AboutPath returns the about.md path for id.
func (s *Store) AboutPath(id string) string {
	return filepath.Join(s.root, id, AboutFile)
}

// Ensure creates the store directory tree if it is absent.
func (s *Store) Ensure(ctx context.Context) error {
	if err := s.fs.MkdirAll(s.root, storeDirPerm); err != nil {
		return fmt.Errorf("creating command store %s: %w", s.root, err)
	}

	ctxlog.Debug(ctx, "command store ready", "store", s.root)

	return nil
}

// Resolve returns the trimmed content of the command.md of id.
// Errors are *EntryError values matching ErrNotFound, ErrEmpty or ErrRead.
func (s *Store) Resolve(ctx context.Context, id string) (string, error) {
	path := s.CommandPath(id)
	logger := ctxlog.Logger(ctx).With("identifier", id, "path", path)

	if !validIdentifier(id) {
		return "", &EntryError{Identifier: id, Path: path, Kind: ErrNotFound, Err: errInvalidIdentifier}
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &EntryError{Identifier: id, Path: path, Kind: ErrNotFound}
		}

		return "", &EntryError{Identifier: id, Path: path, Kind: ErrRead, Err: err}
	}

	if info.IsDir() {
		return "", &EntryError{Identifier: id, Path: path, Kind: ErrRead, Err: errIsDirectory}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", &EntryError{Identifier: id, Path: path, Kind: ErrRead, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &EntryError{Identifier: id, Path: path, Kind: ErrRead, Err: errInvalidEncoding}
	}

	command := strings.TrimSpace(string(data))
	if command == "" {
		return "", &EntryError{Identifier: id, Path: path, Kind: ErrEmpty}
	}

	logger.Debug("command resolved", "bytes", len(command))

	return command, nil
}

// Describe returns the trimmed content of the about.md of id, or NoDescription
// when it is missing, empty or unreadable. It never fails.
func (s *Store) Describe(ctx context.Context, id string) string {
	if !validIdentifier(id) {
		return NoDescription
	}

	path := s.AboutPath(id)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			ctxlog.Debug(ctx, "description unreadable", "identifier", id, "path", path, "error", err)
		}

		return NoDescription
	}

	if !utf8.Valid(data) {
		ctxlog.Debug(ctx, "description unreadable", "identifier", id, "path", path, "error", errInvalidEncoding)
		return NoDescription
	}

	if about := strings.TrimSpace(string(data)); about != "" {
		return about
	}

	return NoDescription
}

// Identifiers returns the names of the immediate subdirectories of the store
// in directory read order. Files in the store root are ignored.
func (s *Store) Identifiers(ctx context.Context) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, s.root)
		}

		return nil, fmt.Errorf("listing command store %s: %w", s.root, err)
	}

	ids := make([]string, 0, len(infos))

	for _, info := range infos {
		if info.IsDir() {
			ids = append(ids, info.Name())
		}
	}

	ctxlog.Debug(ctx, "command store listed", "store", s.root, "entries", len(ids))

	return ids, nil
}

// List pairs every identifier with its description.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	ids, err := s.Identifiers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{
			Identifier:  id,
			Description: s.Describe(ctx, id),
		})
	}

	return entries, nil
}

// Check resolves every entry and returns how many are usable.
// The error aggregates one *EntryError per unusable entry and is nil when all are usable.
func (s *Store) Check(ctx context.Context) (int, error) {
	ids, err := s.Identifiers(ctx)
	if err != nil {
		return 0, err
	}

	var (
		usable int
		merr   *multierror.Error
	)

	for _, id := range ids {
		if _, err := s.Resolve(ctx, id); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		usable++
	}

	return usable, merr.ErrorOrNil()
}

func validIdentifier(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}

	return !strings.ContainsAny(id, `/\`+"\x00")
}
