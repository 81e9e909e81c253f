// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "time"

// estimate tracks how much of the estimated duration has been displayed.
// elapsed only ever increases and never exceeds total.
type estimate struct {
	total   time.Duration
	step    time.Duration
	elapsed time.Duration
}

func newEstimate(total, step time.Duration) *estimate {
	return &estimate{total: total, step: step}
}

// advance moves elapsed forward by one step, clamped so it never
// overshoots total. It returns the increment actually applied, which is
// zero once the estimate is exhausted.
func (e *estimate) advance() time.Duration {
	if e.elapsed >= e.total {
		return 0
	}

	inc := e.step
	if rem := e.total - e.elapsed; rem < inc {
		inc = rem
	}

	e.elapsed += inc

	return inc
}

// exhausted reports whether the displayed progress has reached the estimate.
func (e *estimate) exhausted() bool {
	return e.elapsed >= e.total
}
