// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sysinfo takes a point-in-time snapshot of the host and process
// for diagnostics. Snapshots are gathered on demand, never cached at
// package init, so they are always current.
package sysinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Snapshot is a point-in-time view of the host and the running process.
type Snapshot struct {
	Time         time.Time `json:"time"`
	Hostname     string    `json:"hostname"`
	OS           string    `json:"os"`
	Arch         string    `json:"arch"`
	NumCPU       int       `json:"num_cpu"`
	GoVersion    string    `json:"go_version"`
	PID          int       `json:"pid"`
	WorkingDir   string    `json:"working_dir"`
	NumGoroutine int       `json:"num_goroutine"`
	HeapAlloc    uint64    `json:"heap_alloc"`
	HeapSys      uint64    `json:"heap_sys"`
}

// Gather collects a fresh snapshot. Hostname or working directory lookup
// failures degrade to empty fields rather than failing the whole snapshot.
func Gather() *Snapshot {
	var ms runtime.MemStats

	runtime.ReadMemStats(&ms)

	hostname, _ := os.Hostname()
	wd, _ := os.Getwd()

	return &Snapshot{
		Time:         time.Now(),
		Hostname:     hostname,
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		GoVersion:    runtime.Version(),
		PID:          os.Getpid(),
		WorkingDir:   wd,
		NumGoroutine: runtime.NumGoroutine(),
		HeapAlloc:    ms.HeapAlloc,
		HeapSys:      ms.HeapSys,
	}
}

// Render writes the snapshot as a two-column table.
func (s *Snapshot) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"Time", s.Time.Format(time.RFC3339)},
		{"Hostname", s.Hostname},
		{"OS", s.OS + "/" + s.Arch},
		{"CPUs", strconv.Itoa(s.NumCPU)},
		{"Go", s.GoVersion},
		{"PID", strconv.Itoa(s.PID)},
		{"Working dir", s.WorkingDir},
		{"Goroutines", strconv.Itoa(s.NumGoroutine)},
		{"Heap alloc", humanize.IBytes(s.HeapAlloc)},
		{"Heap sys", humanize.IBytes(s.HeapSys)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteJSON writes the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}
