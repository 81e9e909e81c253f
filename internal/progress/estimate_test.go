// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateAdvanceWholeSteps(t *testing.T) {
	e := newEstimate(100*time.Millisecond, 25*time.Millisecond)

	for range 4 {
		assert.Equal(t, 25*time.Millisecond, e.advance())
	}

	assert.True(t, e.exhausted())
	assert.Equal(t, time.Duration(0), e.advance())
}

func TestEstimateAdvanceFinalRemainder(t *testing.T) {
	e := newEstimate(100*time.Millisecond, 30*time.Millisecond)

	assert.Equal(t, 30*time.Millisecond, e.advance())
	assert.Equal(t, 30*time.Millisecond, e.advance())
	assert.Equal(t, 30*time.Millisecond, e.advance())

	// Only 10ms left: the final advance is the remainder, not a full step.
	assert.Equal(t, 10*time.Millisecond, e.advance())
	assert.True(t, e.exhausted())
	assert.Equal(t, 100*time.Millisecond, e.elapsed)
}

func TestEstimateNeverExceedsTotal(t *testing.T) {
	e := newEstimate(50*time.Millisecond, 20*time.Millisecond)

	var prev time.Duration

	for range 10 {
		e.advance()
		assert.GreaterOrEqual(t, e.elapsed, prev, "elapsed must be monotonic")
		assert.LessOrEqual(t, e.elapsed, e.total, "elapsed must never exceed total")
		prev = e.elapsed
	}

	assert.Equal(t, e.total, e.elapsed)
}
