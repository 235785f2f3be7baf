// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config resolves where fabrun keeps its files and loads the optional
// settings and dotenv files that live next to the command store.
//
// Layout under the per-user configuration root:
//
//	fabrun/
//	  commands/<identifier>/command.md
//	  commands/<identifier>/about.md
//	  config.yaml
//	  .env
package config
