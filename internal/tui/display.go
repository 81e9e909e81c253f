// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Display adapts a running bubbletea program to the progress Display
// contract. Every display call becomes a program message, so it may be
// invoked from any goroutine; Close quits the program and waits for the
// final frame to be flushed.
type Display struct {
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
}

// NewDisplay starts the TUI program for a run of the given estimated
// total duration.
func NewDisplay(label string, total time.Duration, leave bool) *Display {
	program := tea.NewProgram(NewModel(label, total, leave))

	d := &Display{
		program: program,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(d.done)
		_, _ = program.Run()
	}()

	return d
}

// Advance implements the progress Display contract.
func (d *Display) Advance(delta time.Duration) {
	d.program.Send(advanceMsg{delta: delta})
}

// Message implements the progress Display contract.
func (d *Display) Message(msg string) {
	d.program.Send(messageMsg{text: msg})
}

// Println implements the progress Display contract.
func (d *Display) Println(msg string) {
	d.program.Send(printlnMsg{text: msg})
}

// Close implements the progress Display contract. It is safe to call more
// than once; the first call blocks until the program has exited.
func (d *Display) Close() {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()
		return
	}

	d.closed = true
	d.mu.Unlock()

	d.program.Send(closeMsg{})
	<-d.done
}
