// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sysinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysinfoTable(t *testing.T) {
	buf := &bytes.Buffer{}
	SysinfoCmd.Writer = buf

	err := SysinfoCmd.Run(context.Background(), []string{"sysinfo"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hostname")
	assert.Contains(t, buf.String(), "Go")
}

func TestSysinfoJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	SysinfoCmd.Writer = buf

	err := SysinfoCmd.Run(context.Background(), []string{"sysinfo", "--json"})

	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "hostname")
	assert.Contains(t, decoded, "go_version")
}
