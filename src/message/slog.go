// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package message contains functions to print messages to the screen
package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// SLog sets the default structured log handler for messages
	SLog = slog.New(KyleHandler{})
)

// KyleHandler is a simple handler that implements the slog.Handler interface
type KyleHandler struct {
	attrs []slog.Attr
}

// Enabled reports whether the record level passes the current LogLevel
func (k KyleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return enabled(level)
}

// WithAttrs returns a handler that appends attrs to every message
func (k KyleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(k.attrs)+len(attrs))
	merged = append(merged, k.attrs...)
	merged = append(merged, attrs...)
	return KyleHandler{attrs: merged}
}

// WithGroup is not supported
func (k KyleHandler) WithGroup(_ string) slog.Handler {
	return k
}

// Handle prints the record with the respective pterm printer, attributes are rendered as key=value
func (k KyleHandler) Handle(_ context.Context, record slog.Record) error {
	if !enabled(record.Level) {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(record.Message)
	for _, attr := range k.attrs {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value)
	}
	record.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value)
		return true
	})
	message := sb.String()

	switch {
	case record.Level >= slog.LevelError:
		errorf("%s", message)
	case record.Level >= slog.LevelWarn:
		Warnf("%s", message)
	case record.Level >= slog.LevelInfo:
		Infof("%s", message)
	default:
		Debugf("%s", message)
	}
	return nil
}
