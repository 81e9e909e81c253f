// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/morningrocks/dmutil"
	"github.com/morningrocks/dmutil/cmd/exec"
	"github.com/morningrocks/dmutil/cmd/sysinfo"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		exec.ExecCmd,
		sysinfo.SysinfoCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "dmutil",
	Description: `dmutil is a small collection of developer utilities: a shell command
runner with live line-streamed output, an estimate-paced progress bar for
long-running work, and host diagnostics.`,
	Usage:                 "dmutil exec 'make build' --estimate 2m",
	Version:               dmutil.Version,
	EnableShellCompletion: true,
}
