// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/morningrocks/dmutil/internal/ctxlog"
)

// Task is a unit of work run under a progress bar.
type Task[T any] func(ctx context.Context) (T, error)

// HandleTask is a Task that additionally receives a Handle for writing
// messages to the live display.
type HandleTask[T any] func(ctx context.Context, bar *Handle) (T, error)

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	v any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	switch x := e.v.(type) {
	case string:
		return "task panic: " + x
	case error:
		return "task panic: " + x.Error()
	default:
		return fmt.Sprintf("task panic: %v", x)
	}
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.v
}

// outcome is the single-slot result holder shared between the worker and
// the pacing loop. It is written exactly once by the worker; receiving it
// from the channel establishes the happens-before needed to read it.
type outcome[T any] struct {
	val T
	err error
}

// Run executes task on a background goroutine while pacing a progress
// display against opts.EstimatedTime. It returns the task's own result and
// error unchanged; the display is closed on every exit path before Run
// returns. The task is never cancelled by the pacing loop: ctx is handed
// to the task untouched and an overrunning task simply holds the bar at
// 100% until it completes.
func Run[T any](ctx context.Context, opts Options, task HandleTask[T]) (T, error) {
	var zero T

	opts, err := opts.normalize()
	if err != nil {
		return zero, err
	}

	display := newSyncDisplay(opts.Display)
	defer display.Close()

	resCh := make(chan outcome[T], 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.Error(ctx, "task panicked", "label", opts.Label, "panic", r)
				resCh <- outcome[T]{err: &PanicError{v: r}}
			}
		}()

		val, err := task(ctx, &Handle{d: display})
		resCh <- outcome[T]{val: val, err: err}
	}()

	est := newEstimate(opts.EstimatedTime, opts.Step)
	ticker := time.NewTicker(opts.Step)
	defer ticker.Stop()

	var res outcome[T]

	for running := true; running; {
		select {
		case res = <-resCh:
			running = false
		case <-ticker.C:
			if inc := est.advance(); inc > 0 {
				display.Advance(inc)
			}
		}
	}

	// Catch-up: a task that finished early still gets a bar that reaches
	// 100%, drained without further waiting.
	for !est.exhausted() {
		display.Advance(est.advance())
	}

	return res.val, res.err
}

// Wrap decorates a Task so that invoking the returned Task runs the
// original under a progress bar. Arguments captured by the task closure
// and its return values pass through unchanged.
func Wrap[T any](opts Options, task Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		return Run(ctx, opts, func(ctx context.Context, _ *Handle) (T, error) {
			return task(ctx)
		})
	}
}

// WrapHandle decorates a HandleTask the same way, injecting the display
// handle when the task runs.
func WrapHandle[T any](opts Options, task HandleTask[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		return Run(ctx, opts, task)
	}
}
