// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 40

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	msgStyle   = lipgloss.NewStyle().Faint(true)
)

// advanceMsg moves the displayed progress forward.
type advanceMsg struct {
	delta time.Duration
}

// messageMsg replaces the trailing message next to the bar.
type messageMsg struct {
	text string
}

// printlnMsg emits a standalone line above the bar.
type printlnMsg struct {
	text string
}

// closeMsg tells the model to render its final frame and quit.
type closeMsg struct{}

// Model is the bubbletea model for a single paced run.
type Model struct {
	label   string
	total   time.Duration
	elapsed time.Duration
	msg     string
	bar     progress.Model
	spin    spinner.Model
	leave   bool
	closing bool
}

// NewModel creates a model representing total worth of estimated work.
func NewModel(label string, total time.Duration, leave bool) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultBarWidth

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		label: label,
		total: total,
		bar:   bar,
		spin:  spin,
		leave: leave,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		m.elapsed += msg.delta
		if m.elapsed > m.total {
			m.elapsed = m.total
		}

		return m, m.bar.SetPercent(m.Percent())

	case messageMsg:
		m.msg = msg.text
		return m, nil

	case printlnMsg:
		return m, tea.Println(msg.text)

	case closeMsg:
		m.closing = true
		return m, tea.Quit

	case progress.FrameMsg:
		barModel, cmd := m.bar.Update(msg)
		m.bar = barModel.(progress.Model)

		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		width := msg.Width - lipgloss.Width(m.label) - 8
		if width > 0 {
			m.bar.Width = min(width, defaultBarWidth)
		}

		return m, nil

	case tea.KeyMsg:
		// The task cannot be cancelled; keys are ignored until it finishes.
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.closing && !m.leave {
		return ""
	}

	sb := strings.Builder{}

	if !m.closing {
		sb.WriteString(m.spin.View())
		sb.WriteString(" ")
	}

	if m.label != "" {
		sb.WriteString(labelStyle.Render(m.label))
		sb.WriteString(" ")
	}

	sb.WriteString(m.bar.View())

	if m.msg != "" {
		sb.WriteString(" ")
		sb.WriteString(msgStyle.Render(m.msg))
	}

	sb.WriteString("\n")

	return sb.String()
}

// Percent returns the displayed completion in [0, 1].
func (m Model) Percent() float64 {
	if m.total <= 0 {
		return 0
	}

	return float64(m.elapsed) / float64(m.total)
}
