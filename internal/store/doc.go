// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package store reads the command store: a directory with one subdirectory per
// command identifier, each holding a required command.md and an optional about.md.
//
// The store is read-only from fabrun's point of view. Every read happens at call
// time, so edits made while fabrun runs are picked up without any locking.
package store
