// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shellrun

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/morningrocks/dmutil/internal/ctxlog"
)

const (
	defaultShell = "/bin/sh"

	// maxLineSize bounds a single output line.
	maxLineSize = 1024 * 1024
)

var (
	// ErrCreatePipe is returned when the output pipe could not be created.
	ErrCreatePipe = errors.New("failed to create pipe")
	// ErrStartProcess is returned when the process could not be started.
	ErrStartProcess = errors.New("could not start process")
	// ErrReadOutput is returned when the merged output stream could not be read.
	ErrReadOutput = errors.New("failed to read process output")
)

// Sink receives one stripped output line at a time, in order.
type Sink func(line string)

// Result is the outcome of a completed command.
type Result struct {
	// Lines holds every stripped output line in arrival order.
	Lines []string
	// ExitCode is the process's exit status. It is only trustworthy once
	// Run has returned: the stream is drained and the process reaped.
	ExitCode int
	// Duration is the command's wall time.
	Duration time.Duration
}

type options struct {
	dir  string
	echo bool
	sink Sink
	out  io.Writer
}

// Option configures Run.
type Option func(*options)

// WithDir sets the working directory for the command.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithEcho controls whether lines are forwarded to the sink as they
// arrive. Defaults to true.
func WithEcho(echo bool) Option {
	return func(o *options) {
		o.echo = echo
	}
}

// WithSink replaces the default console sink. A custom sink receives the
// bare line; the default sink prefixes a carriage return so progress-style
// output (package managers, download meters) overwrites in place.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithStdout redirects the default sink's writer. Used in tests.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// Run executes command through the shell and returns its output lines and
// exit code. The child's stdout and stderr are merged and read line by
// line as they appear. Cancelling ctx kills the process.
//
// A non-zero exit code does not produce an error; the returned error
// covers only infrastructure failures (pipe, start, read). On such
// failures the partial Result collected so far is still returned.
func Run(ctx context.Context, command string, opts ...Option) (*Result, error) {
	o := options{
		echo: true,
		out:  os.Stdout,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.sink == nil {
		out := o.out
		o.sink = func(line string) {
			// The \r lets repeated progress-style lines overwrite in place
			// on terminals that honor it.
			fmt.Fprintln(out, "\r"+line)
		}
	}

	logger := ctxlog.Logger(ctx).With("command", command, "cwd", o.dir)
	logger.Debug("running shell command")

	res := &Result{ExitCode: -1}

	pr, pw, err := os.Pipe()
	if err != nil {
		return res, errors.Join(ErrCreatePipe, err)
	}

	cmd := exec.CommandContext(ctx, shellPath(), "-c", command)
	cmd.Dir = o.dir
	cmd.Stdout = pw
	cmd.Stderr = pw

	start := time.Now()

	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()

		return res, errors.Join(ErrStartProcess, err)
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	// The parent must drop its copy of the write end, or the read side
	// never sees EOF.
	_ = pw.Close()

	var errs *multierror.Error

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		res.Lines = append(res.Lines, line)

		if o.echo {
			o.sink(line)
		}
	}

	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Join(ErrReadOutput, err))
	}

	_ = pr.Close()

	// The stream is exhausted; now reap the process. Both must have
	// happened before the exit code means anything.
	err = cmd.Wait()
	res.ExitCode = cmd.ProcessState.ExitCode()
	res.Duration = time.Since(start)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		errs = multierror.Append(errs, err)
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "lines", len(res.Lines), "duration", res.Duration)

	return res, errs.ErrorOrNil()
}

func shellPath() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}

	return defaultShell
}
