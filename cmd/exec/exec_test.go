// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exec

import (
	"context"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestFirstWord(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{name: "single word", command: "make", expected: "make"},
		{name: "command with args", command: "make build -j4", expected: "make"},
		{name: "leading spaces", command: "  go test ./...", expected: "go"},
		{name: "empty", command: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstWord(tt.command))
		})
	}
}

func TestExecSuccess(t *testing.T) {
	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	defer stubs.Reset()

	err := ExecCmd.Run(context.Background(), []string{"exec", "-q", "echo hi"})
	require.NoError(t, err)
}

func TestExecNonZeroExit(t *testing.T) {
	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	defer stubs.Reset()

	err := ExecCmd.Run(context.Background(), []string{"exec", "-q", "exit 3"})
	require.Error(t, err)

	var ec cli.ExitCoder

	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 3, ec.ExitCode())
}

func TestExecMissingCommand(t *testing.T) {
	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	defer stubs.Reset()

	err := ExecCmd.Run(context.Background(), []string{"exec"})
	require.Error(t, err)
}

func TestExecPaced(t *testing.T) {
	stubs := gostub.Stub(&cli.OsExiter, func(int) {})
	defer stubs.Reset()

	err := ExecCmd.Run(context.Background(), []string{
		"exec", "-q", "--estimate", "40ms", "--step", "10ms", "--label", "t", "echo done",
	})
	require.NoError(t, err)
}
