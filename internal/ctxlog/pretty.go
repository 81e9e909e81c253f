// Copyright (c) Daemon Huang 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/morningrocks/dmutil/internal/color"
	"golang.org/x/term"
)

var (
	// ErrMarshalAttrs is returned when log attributes cannot be marshaled.
	ErrMarshalAttrs = errors.New("error marshaling log attributes")
	// ErrWriteLog is returned when the log line cannot be written.
	ErrWriteLog = errors.New("error writing log line")
)

var attrFormatter = colorjson.NewFormatter()

func init() {
	attrFormatter.Indent = 2
	attrFormatter.DisabledColor = !term.IsTerminal(int(os.Stderr.Fd()))
}

// Pretty is a slog.Handler that renders human-friendly colored lines:
// a timestamp, a colored level tag, the message, then any attributes as
// indented JSON. It delegates attribute collection to an inner JSON
// handler writing into a shared buffer.
type Pretty struct {
	inner   slog.Handler
	replace func([]string, slog.Attr) slog.Attr
	buf     *bytes.Buffer
	mu      *sync.Mutex
	writer  io.Writer
}

// NewPretty creates a Pretty handler with the given options.
func NewPretty(handlerOptions *slog.HandlerOptions, options ...PrettyOption) *Pretty {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	h := &Pretty{
		buf: buf,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		replace: handlerOptions.ReplaceAttr,
		mu:      &sync.Mutex{},
		writer:  os.Stderr,
	}

	for _, opt := range options {
		opt(h)
	}

	return h
}

// PrettyOption implements functional options for Pretty.
type PrettyOption func(h *Pretty)

// WithWriter sets the destination writer.
func WithWriter(w io.Writer) PrettyOption {
	return func(h *Pretty) {
		h.writer = w
	}
}

// Enabled implements slog.Handler.
func (h *Pretty) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (h *Pretty) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Pretty{inner: h.inner.WithAttrs(attrs), replace: h.replace, buf: h.buf, mu: h.mu, writer: h.writer}
}

// WithGroup implements slog.Handler.
func (h *Pretty) WithGroup(name string) slog.Handler {
	return &Pretty{inner: h.inner.WithGroup(name), replace: h.replace, buf: h.buf, mu: h.mu, writer: h.writer}
}

// Handle implements slog.Handler.
func (h *Pretty) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level <= slog.LevelDebug:
		level = color.Colorize(level, color.FgWhite)
	case r.Level <= slog.LevelInfo:
		level = color.Colorize(level, color.FgCyan)
	case r.Level < slog.LevelError:
		level = color.Colorize(level, color.FgYellow)
	default:
		level = color.Colorize(level, color.FgRed)
	}

	timestamp := color.Colorize(r.Time.Format(TimeFormat), color.FgWhite)
	msg := color.Colorize(r.Message, color.FgHiWhite)

	attrs, err := h.collectAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrBytes []byte

	if len(attrs) > 0 {
		attrBytes, err = attrFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttrs, err)
		}
	}

	out := strings.Builder{}
	out.WriteString(timestamp)
	out.WriteString(" ")
	out.WriteString(level)
	out.WriteString(" ")
	out.WriteString(msg)

	if len(attrBytes) > 0 {
		out.WriteString(" ")
		out.WriteString(string(attrBytes))
	}

	out.WriteString("\n")

	if _, err := io.WriteString(h.writer, out.String()); err != nil {
		return errors.Join(ErrWriteLog, err)
	}

	return nil
}

// collectAttrs runs the record through the inner JSON handler and decodes
// the result, yielding the record's attributes as a generic map.
func (h *Pretty) collectAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()

	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("inner handler: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("decode inner handler output: %w", err)
	}

	return attrs, nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
