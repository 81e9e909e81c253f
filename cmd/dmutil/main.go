// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the dmutil command-line application.
package main

import (
	"context"
	"os"

	"github.com/morningrocks/dmutil/cmd"
	"github.com/morningrocks/dmutil/internal/ctxlog"
	"github.com/morningrocks/dmutil/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
