// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelAdvanceClampsAtTotal(t *testing.T) {
	m := NewModel("job", time.Second, true)

	next, _ := m.Update(advanceMsg{delta: 400 * time.Millisecond})
	m = next.(Model)
	assert.InDelta(t, 0.4, m.Percent(), 0.001)

	next, _ = m.Update(advanceMsg{delta: 2 * time.Second})
	m = next.(Model)
	assert.InDelta(t, 1.0, m.Percent(), 0.001)
}

func TestModelMessage(t *testing.T) {
	m := NewModel("job", time.Second, true)

	next, cmd := m.Update(messageMsg{text: "copying"})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "copying")
}

func TestModelPrintlnEmitsCmd(t *testing.T) {
	m := NewModel("job", time.Second, true)

	_, cmd := m.Update(printlnMsg{text: "a line"})
	require.NotNil(t, cmd, "println must produce a tea.Println command")
}

func TestModelCloseQuits(t *testing.T) {
	m := NewModel("job", time.Second, true)

	next, cmd := m.Update(closeMsg{})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.closing)
}

func TestModelViewContainsLabelAndBar(t *testing.T) {
	m := NewModel("encode", time.Second, true)

	next, _ := m.Update(advanceMsg{delta: 500 * time.Millisecond})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "encode")
	assert.NotEmpty(t, view)
}

func TestModelViewAfterCloseWithoutLeave(t *testing.T) {
	m := NewModel("encode", time.Second, false)

	next, _ := m.Update(closeMsg{})
	m = next.(Model)

	assert.Empty(t, m.View(), "a non-leave bar disappears on close")
}

func TestModelKeysIgnored(t *testing.T) {
	m := NewModel("job", time.Second, true)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	assert.Nil(t, cmd, "the task cannot be cancelled from the keyboard")
	assert.False(t, m.closing)
}
