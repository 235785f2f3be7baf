// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app builds the fabrun command-line interface.
//
// A single root command decides between its states in a fixed order: version,
// list, check, run an identifier, and finally help when nothing else applies.
package app
