// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides a bubbletea-backed progress display for
// interactive terminals: an animated bar with a spinner, a live message
// area, and scrollback for standalone lines. It implements the same
// Display contract as the plain terminal bar, receiving updates as
// program messages from whichever goroutine produced them.
package tui
