// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

const appDir = "dmutil"

var (
	// ErrReadConfig is returned when the config file exists but cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when the config file cannot be parsed.
	ErrParseConfig = errors.New("failed to parse config file")
)

// Config is the resolved configuration.
type Config struct {
	Progress ProgressDefaults
}

// ProgressDefaults are the default options for the progress bar.
type ProgressDefaults struct {
	EstimatedTime time.Duration
	Step          time.Duration
	Leave         bool
	Width         int
}

// fileConfig is the on-disk shape. Durations are strings so the file can
// say "10s" or "250ms".
type fileConfig struct {
	Progress struct {
		EstimatedTime string `yaml:"estimated_time"`
		Step          string `yaml:"step"`
		Leave         *bool  `yaml:"leave"`
		Width         int    `yaml:"width"`
	} `yaml:"progress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Progress: ProgressDefaults{
			EstimatedTime: 10 * time.Second,
			Step:          100 * time.Millisecond,
			Leave:         true,
			Width:         25,
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.yaml")
}

// Load reads the config file at path from fsys, overlaying it on the
// defaults. An empty path means DefaultPath(); a missing file is not an
// error. Every bad field in the file is reported, not just the first.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, errors.Join(ErrReadConfig, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, errors.Join(ErrParseConfig, err)
	}

	var errs *multierror.Error

	if fc.Progress.EstimatedTime != "" {
		d, err := time.ParseDuration(fc.Progress.EstimatedTime)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("estimated_time: %w", err))
		} else {
			cfg.Progress.EstimatedTime = d
		}
	}

	if fc.Progress.Step != "" {
		d, err := time.ParseDuration(fc.Progress.Step)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("step: %w", err))
		} else {
			cfg.Progress.Step = d
		}
	}

	if fc.Progress.Leave != nil {
		cfg.Progress.Leave = *fc.Progress.Leave
	}

	if fc.Progress.Width > 0 {
		cfg.Progress.Width = fc.Progress.Width
	}

	if errs.ErrorOrNil() != nil {
		return cfg, errors.Join(ErrParseConfig, errs)
	}

	return cfg, nil
}
