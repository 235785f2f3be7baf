// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package executor runs command text through the system shell.
//
// Output is either streamed straight to the configured writers while the child runs,
// or captured and printed once it has finished. In both modes the child inherits
// stdin and receives the process environment plus any extra variables that are not
// already set.
package executor
