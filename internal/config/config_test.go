// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := Load(fsys, "/nope/config.yaml")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := `
progress:
  estimated_time: 30s
  step: 250ms
  leave: false
  width: 40
`
	require.NoError(t, afero.WriteFile(fsys, "/etc/dmutil/config.yaml", []byte(data), 0o644))

	cfg, err := Load(fsys, "/etc/dmutil/config.yaml")

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Progress.EstimatedTime)
	assert.Equal(t, 250*time.Millisecond, cfg.Progress.Step)
	assert.False(t, cfg.Progress.Leave)
	assert.Equal(t, 40, cfg.Progress.Width)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := `
progress:
  estimated_time: 5s
`
	require.NoError(t, afero.WriteFile(fsys, "/c.yaml", []byte(data), 0o644))

	cfg, err := Load(fsys, "/c.yaml")

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Progress.EstimatedTime)
	assert.Equal(t, Default().Progress.Step, cfg.Progress.Step)
	assert.Equal(t, Default().Progress.Width, cfg.Progress.Width)
	assert.True(t, cfg.Progress.Leave)
}

func TestLoadBadYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/c.yaml", []byte("progress: ["), 0o644))

	_, err := Load(fsys, "/c.yaml")

	assert.ErrorIs(t, err, ErrParseConfig)
}

func TestLoadReportsEveryBadDuration(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := `
progress:
  estimated_time: banana
  step: apple
`
	require.NoError(t, afero.WriteFile(fsys, "/c.yaml", []byte(data), 0o644))

	_, err := Load(fsys, "/c.yaml")

	require.ErrorIs(t, err, ErrParseConfig)
	assert.Contains(t, err.Error(), "estimated_time")
	assert.Contains(t, err.Error(), "step")
}

func TestDefaultPath(t *testing.T) {
	assert.Contains(t, DefaultPath(), "dmutil")
	assert.Contains(t, DefaultPath(), "config.yaml")
}
