// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides minimal ANSI color helpers for console output.
// Color output is decided once at startup: the NO_COLOR environment variable
// disables it, FORCE_COLOR enables it, otherwise it is on when stdout is a
// terminal.
package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code represents an ANSI SGR code.
type Code int

// Text format codes.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground hi-intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	csiPrefix = "\033["
	csiSuffix = "m"
	sgrReset  = "\033[0m"
)

var enabled = detect()

// Enabled reports whether color output is on for this process.
func Enabled() bool {
	return enabled
}

// Colorize wraps str in the given SGR codes, followed by a reset.
// It returns str unchanged when color output is off.
func Colorize(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(csiPrefix) + len(csiSuffix) + len(sgrReset) + 4*len(codes))
	sb.WriteString(csiPrefix)

	for i, c := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(c)))
	}

	sb.WriteString(csiSuffix)
	sb.WriteString(str)
	sb.WriteString(sgrReset)

	return sb.String()
}

func detect() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
