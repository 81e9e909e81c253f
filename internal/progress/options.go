// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultStep is the poll quantum used when Options.Step is zero.
	DefaultStep = 100 * time.Millisecond
	// DefaultWidth is the bar cell width used when Options.Width is zero.
	DefaultWidth = 25
)

var (
	// ErrInvalidEstimate is returned when the estimated time is not positive.
	ErrInvalidEstimate = errors.New("estimated time must be positive")
	// ErrInvalidStep is returned when the poll quantum is not positive.
	ErrInvalidStep = errors.New("step must be positive")
)

// Options configures a paced run.
type Options struct {
	// EstimatedTime is how long the task is expected to take. Required.
	EstimatedTime time.Duration
	// Step is the poll quantum: the wait granularity between bar updates.
	// Defaults to DefaultStep.
	Step time.Duration
	// Label is displayed in front of the bar.
	Label string
	// Leave keeps the completed bar on screen instead of erasing it.
	Leave bool
	// Width is the bar width in cells. Defaults to DefaultWidth.
	Width int
	// Display overrides the default terminal bar, e.g. with the TUI
	// display or a test double.
	Display Display
}

// normalize applies defaults and validates the options.
// The returned display is ready for use.
func (o Options) normalize() (Options, error) {
	if o.Step == 0 {
		o.Step = DefaultStep
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}

	if o.EstimatedTime <= 0 {
		return o, ErrInvalidEstimate
	}

	if o.Step < 0 {
		return o, ErrInvalidStep
	}

	if o.Display == nil {
		o.Display = NewTermBar(os.Stdout, o.Label, o.EstimatedTime, o.Width, o.Leave)
	}

	return o, nil
}
