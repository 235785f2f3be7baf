// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package teewriter provides an io.Writer that forwards everything to a
// destination while keeping a bounded copy of the data and the last non-blank line.
// The executor uses it to stream a command's stderr to the terminal and still
// quote the tail of it when the command fails.
package teewriter
