// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for OS termination signals and exposes them
// on a channel. The Watch helper cancels a context when the same signal
// arrives twice, so a first interrupt is an orderly stop and a second one
// forces termination.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/morningrocks/dmutil/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel receiving the given signals, or the default
// termination set when none are specified.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker listening", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors sigCh and cancels the context when a second signal of the
// same type is received. It returns when sigCh is closed or the context is
// cancelled.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "received second signal, terminating", "signal", sig.String())
			signal.Stop(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "received signal, send again to terminate", "signal", sig.String())
		seen[sig] = struct{}{}
	}
}
