// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sysinfo implements the "dmutil sysinfo" subcommand: print a
// snapshot of the host and process for diagnostics.
package sysinfo

import (
	"context"

	"github.com/morningrocks/dmutil/internal/sysinfo"
	"github.com/urfave/cli/v3"
)

const jsonFlag = "json"

// SysinfoCmd is the command that prints host diagnostics.
var SysinfoCmd = &cli.Command{
	Name:        "sysinfo",
	Description: "Print a point-in-time snapshot of the host and process.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  jsonFlag,
			Usage: "Emit JSON instead of a table",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	snap := sysinfo.Gather()

	if cmd.Bool(jsonFlag) {
		if err := snap.WriteJSON(cmd.Writer); err != nil {
			return cli.Exit("Failed to write snapshot: "+err.Error(), 1)
		}

		return nil
	}

	snap.Render(cmd.Writer)

	return nil
}
