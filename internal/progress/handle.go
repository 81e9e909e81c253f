// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Handle is given to tasks that want to write to the display while they
// run. It is safe to use from the task goroutine: calls are serialized
// with the pacing loop's own display updates.
//
// A Handle must not be used after the task returns.
type Handle struct {
	d *syncDisplay
}

// PrintWithBar replaces the trailing text on the live progress line.
func (h *Handle) PrintWithBar(msg string) {
	h.d.Message(msg)
}

// PrintInLine emits msg on its own line, leaving the progress line intact.
func (h *Handle) PrintInLine(msg string) {
	h.d.Println(msg)
}
