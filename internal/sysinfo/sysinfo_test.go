// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sysinfo

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather(t *testing.T) {
	s := Gather()

	require.NotNil(t, s)
	assert.Equal(t, runtime.GOOS, s.OS)
	assert.Equal(t, runtime.GOARCH, s.Arch)
	assert.Positive(t, s.NumCPU)
	assert.Positive(t, s.PID)
	assert.NotEmpty(t, s.GoVersion)
	assert.WithinDuration(t, time.Now(), s.Time, time.Minute)
}

func TestGatherIsFreshEachCall(t *testing.T) {
	first := Gather()
	second := Gather()

	assert.False(t, second.Time.Before(first.Time))
}

func TestRender(t *testing.T) {
	buf := &bytes.Buffer{}
	Gather().Render(buf)

	out := buf.String()
	assert.Contains(t, out, "Hostname")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, runtime.GOOS)
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, Gather().WriteJSON(buf))

	var decoded Snapshot

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, runtime.GOOS, decoded.OS)
}
