// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lastline tracks the most recent complete line of a stream while
// retaining the full output, so a progress display can show what a noisy
// command is currently doing without losing the transcript.
package lastline

import (
	"bytes"
	"strings"
	"sync"
)

// Tracker is an io.Writer that tees everything written to it into a full
// buffer and keeps the last complete line. It is safe for concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	full    bytes.Buffer
	last    string
	partial strings.Builder
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{}
}

// Write implements io.Writer.
func (t *Tracker) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.full.Write(p)
	t.ingest(string(p))

	return len(p), nil
}

// WriteLine records a single complete line.
func (t *Tracker) WriteLine(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.full.WriteString(line)
	t.full.WriteByte('\n')
	t.partial.Reset()
	t.last = line
}

// ingest folds new data into the partial-line state.
// Must be called with the write lock held.
func (t *Tracker) ingest(data string) {
	t.partial.WriteString(data)
	combined := t.partial.String()

	lines := strings.Split(combined, "\n")
	if len(lines) == 1 {
		// No newline yet, keep accumulating the partial line.
		return
	}

	t.last = lines[len(lines)-2]
	t.partial.Reset()
	t.partial.WriteString(lines[len(lines)-1])
}

// Last returns the last complete line. If maxLen > 0 and the line is
// longer, it is truncated with a trailing ellipsis.
func (t *Tracker) Last(maxLen int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	line := t.last
	if maxLen > 3 && len(line) > maxLen {
		line = line[:maxLen-3] + "..."
	}

	return line
}

// Partial returns any data received after the last newline.
func (t *Tracker) Partial() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.partial.String()
}

// Bytes returns a copy-free view of everything written so far.
// Only call it after writing has finished.
func (t *Tracker) Bytes() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.full.Bytes()
}

// Reset clears all state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.full.Reset()
	t.partial.Reset()
	t.last = ""
}
