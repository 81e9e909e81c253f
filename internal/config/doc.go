// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the optional dmutil configuration file, which holds
// default progress rendering options. The file lives at
// $XDG_CONFIG_HOME/dmutil/config.yaml; a missing file yields the built-in
// defaults.
package config
