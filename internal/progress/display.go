// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
	"time"
)

// Display renders the state of a paced run. Implementations are not
// required to be safe for concurrent use: the runner serializes all calls
// through a single mutex shared with any Handle given to the task.
type Display interface {
	// Advance moves the displayed progress forward by delta.
	Advance(delta time.Duration)
	// Message replaces the trailing text on the progress line.
	Message(msg string)
	// Println emits msg on its own line without disturbing the progress line.
	Println(msg string)
	// Close flushes and releases the display. It is called exactly once,
	// on every exit path.
	Close()
}

// NullDisplay discards all display calls. Useful for silent runs and tests.
type NullDisplay struct{}

// Advance implements Display.
func (NullDisplay) Advance(time.Duration) {}

// Message implements Display.
func (NullDisplay) Message(string) {}

// Println implements Display.
func (NullDisplay) Println(string) {}

// Close implements Display.
func (NullDisplay) Close() {}

// syncDisplay wraps a Display with a mutex. The pacing loop and the
// worker's Handle share one instance, so terminal writes never interleave.
type syncDisplay struct {
	mu sync.Mutex
	d  Display
}

func newSyncDisplay(d Display) *syncDisplay {
	return &syncDisplay{d: d}
}

func (s *syncDisplay) Advance(delta time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Advance(delta)
}

func (s *syncDisplay) Message(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Message(msg)
}

func (s *syncDisplay) Println(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Println(msg)
}

func (s *syncDisplay) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Close()
}
