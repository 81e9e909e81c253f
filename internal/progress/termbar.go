// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	filledCell = "█"
	emptyCell  = "░"
	clearLine  = "\r\033[K"

	// fallbackTermWidth is assumed when the terminal size cannot be read.
	fallbackTermWidth = 80
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	msgStyle    = lipgloss.NewStyle().Faint(true)
)

// TermBar is the default Display: a single-line text bar redrawn in place
// with carriage returns, in the style of
//
//	label  42%|██████████░░░░░░░░░░░░░░░| message
//
// On a non-terminal writer it suppresses the live redraws and only emits
// Println lines and, when leave is set, one final completed line.
type TermBar struct {
	out       io.Writer
	label     string
	total     time.Duration
	width     int
	leave     bool
	tty       bool
	lineWidth int
	elapsed   time.Duration
	msg       string
	closed    bool
}

// NewTermBar creates a terminal progress bar writing to out.
// total is the duration the bar represents and width is the bar's cell count.
func NewTermBar(out io.Writer, label string, total time.Duration, width int, leave bool) *TermBar {
	b := &TermBar{
		out:       out,
		label:     label,
		total:     total,
		width:     width,
		leave:     leave,
		lineWidth: fallbackTermWidth,
	}

	if f, ok := out.(*os.File); ok {
		b.tty = isatty.IsTerminal(f.Fd())

		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			b.lineWidth = w
		}
	}

	return b
}

// Advance implements Display.
func (b *TermBar) Advance(delta time.Duration) {
	if b.closed {
		return
	}

	b.elapsed += delta
	if b.elapsed > b.total {
		b.elapsed = b.total
	}

	b.render()
}

// Message implements Display.
func (b *TermBar) Message(msg string) {
	if b.closed {
		return
	}

	b.msg = msg
	b.render()
}

// Println implements Display.
func (b *TermBar) Println(msg string) {
	if b.closed {
		return
	}

	if !b.tty {
		fmt.Fprintln(b.out, msg)
		return
	}

	fmt.Fprint(b.out, clearLine+msg+"\n")
	b.render()
}

// Close implements Display. Repeated calls are no-ops.
func (b *TermBar) Close() {
	if b.closed {
		return
	}

	b.closed = true

	if !b.tty {
		if b.leave {
			fmt.Fprintln(b.out, b.line())
		}

		return
	}

	if !b.leave {
		fmt.Fprint(b.out, clearLine)
		return
	}

	fmt.Fprint(b.out, "\r"+b.line()+"\n")
}

// Percent returns the displayed completion in [0, 100].
func (b *TermBar) Percent() float64 {
	if b.total <= 0 {
		return 0
	}

	return 100 * float64(b.elapsed) / float64(b.total)
}

func (b *TermBar) render() {
	if !b.tty {
		return
	}

	fmt.Fprint(b.out, "\r"+b.line())
}

func (b *TermBar) line() string {
	filled := 0
	if b.total > 0 {
		filled = int(float64(b.width) * float64(b.elapsed) / float64(b.total))
	}

	if filled > b.width {
		filled = b.width
	}

	sb := strings.Builder{}

	if b.label != "" {
		sb.WriteString(labelStyle.Render(b.label))
		sb.WriteString(" ")
	}

	sb.WriteString(fmt.Sprintf("%3.0f%%|", b.Percent()))
	sb.WriteString(filledStyle.Render(strings.Repeat(filledCell, filled)))
	sb.WriteString(emptyStyle.Render(strings.Repeat(emptyCell, b.width-filled)))
	sb.WriteString("|")

	if b.msg != "" {
		sb.WriteString(" ")
		sb.WriteString(msgStyle.Render(b.msg))
	}

	line := sb.String()
	if b.tty && lipgloss.Width(line) > b.lineWidth {
		line = lipgloss.NewStyle().MaxWidth(b.lineWidth).Render(line)
	}

	return line
}
