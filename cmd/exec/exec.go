// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exec implements the "dmutil exec" subcommand: run a shell
// command with line-streamed output, optionally paced by a progress bar.
package exec

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/morningrocks/dmutil/internal/config"
	"github.com/morningrocks/dmutil/internal/ctxlog"
	"github.com/morningrocks/dmutil/internal/lastline"
	"github.com/morningrocks/dmutil/internal/progress"
	"github.com/morningrocks/dmutil/internal/shellrun"
	"github.com/morningrocks/dmutil/internal/tui"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	commandArg = "command"

	cwdFlag      = "cwd"
	quietFlag    = "quiet"
	estimateFlag = "estimate"
	stepFlag     = "step"
	labelFlag    = "label"
	linesFlag    = "lines"
	tuiFlag      = "tui"
	configFlag   = "config"

	// barMessageWidth bounds the command output echoed onto the bar.
	barMessageWidth = 48
)

// ExecCmd is the command that runs a single shell command.
var ExecCmd = &cli.Command{
	Name:        "exec",
	Description: "Run a shell command, streaming its merged stdout/stderr line by line. With --estimate, a progress bar paced by the estimate runs alongside the command and the last output line is echoed onto it.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      commandArg,
			UsageText: "COMMAND",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  cwdFlag,
			Usage: "Working directory for the command",
		},
		&cli.BoolFlag{
			Name:    quietFlag,
			Aliases: []string{"q"},
			Usage:   "Do not echo command output",
		},
		&cli.DurationFlag{
			Name:    estimateFlag,
			Aliases: []string{"e"},
			Usage:   "Expected duration; enables the progress bar",
		},
		&cli.DurationFlag{
			Name:  stepFlag,
			Usage: "Progress bar update quantum",
		},
		&cli.StringFlag{
			Name:  labelFlag,
			Usage: "Progress bar label",
		},
		&cli.BoolFlag{
			Name:  linesFlag,
			Usage: "With the progress bar, also echo every output line above it",
		},
		&cli.BoolFlag{
			Name:  tuiFlag,
			Usage: "Render the progress bar with the full-screen-free TUI display",
		},
		&cli.StringFlag{
			Name:  configFlag,
			Usage: "Path to the dmutil config file",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	command := cmd.StringArg(commandArg)
	if command == "" {
		return cli.Exit("Please provide a command to run", 1)
	}

	cfg, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit("Failed to load config: "+err.Error(), 1)
	}

	estimate := cmd.Duration(estimateFlag)
	if estimate == 0 && cmd.Bool(tuiFlag) {
		estimate = cfg.Progress.EstimatedTime
	}

	var res *shellrun.Result

	if estimate > 0 {
		res, err = runPaced(ctx, cmd, cfg, command, estimate)
	} else {
		res, err = shellrun.Run(ctx, command,
			shellrun.WithDir(cmd.String(cwdFlag)),
			shellrun.WithEcho(!cmd.Bool(quietFlag)))
	}

	if err != nil {
		return cli.Exit("Failed to run command: "+err.Error(), 1)
	}

	ctxlog.Info(ctx, "command finished",
		"exitCode", res.ExitCode,
		"lines", len(res.Lines),
		"duration", res.Duration.Round(time.Millisecond).String(),
	)

	if res.ExitCode != 0 {
		return cli.Exit(fmt.Sprintf("Command exited with code %d", res.ExitCode), res.ExitCode)
	}

	return nil
}

func runPaced(
	ctx context.Context, cmd *cli.Command, cfg *config.Config, command string, estimate time.Duration,
) (*shellrun.Result, error) {
	step := cmd.Duration(stepFlag)
	if step == 0 {
		step = cfg.Progress.Step
	}

	label := cmd.String(labelFlag)
	if label == "" {
		label = firstWord(command)
	}

	opts := progress.Options{
		EstimatedTime: estimate,
		Step:          step,
		Label:         label,
		Leave:         cfg.Progress.Leave,
		Width:         cfg.Progress.Width,
	}

	if cmd.Bool(tuiFlag) {
		opts.Display = tui.NewDisplay(label, estimate, cfg.Progress.Leave)
	}

	echoLines := cmd.Bool(linesFlag)
	quiet := cmd.Bool(quietFlag)
	tracker := lastline.New()

	return progress.Run(ctx, opts, func(ctx context.Context, bar *progress.Handle) (*shellrun.Result, error) {
		return shellrun.Run(ctx, command,
			shellrun.WithDir(cmd.String(cwdFlag)),
			shellrun.WithEcho(!quiet),
			shellrun.WithSink(func(line string) {
				tracker.WriteLine(line)
				bar.PrintWithBar(tracker.Last(barMessageWidth))

				if echoLines {
					bar.PrintInLine(line)
				}
			}))
	})
}

func firstWord(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return command
	}

	return fields[0]
}
