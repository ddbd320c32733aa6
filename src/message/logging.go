// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package message contains functions to print messages to the screen
package message

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// LogLevel is the level of logging to display.
type LogLevel int

const (
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel LogLevel = iota
	// InfoLevel level. General operational entries about what's going on inside the
	// application.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel
	// TraceLevel level. Designates finer-grained informational events than the Debug.
	TraceLevel
)

// logLevel is the log level for kyle
var logLevel = InfoLevel

// logFile acts as a buffer for logFile generation
var logFile *os.File

// ParseLogLevel maps a level name to a LogLevel.
func ParseLogLevel(name string) (LogLevel, bool) {
	match := map[string]LogLevel{
		"warn":  WarnLevel,
		"info":  InfoLevel,
		"debug": DebugLevel,
		"trace": TraceLevel,
	}
	lvl, ok := match[name]
	return lvl, ok
}

// UseLogFile creates a timestamped log file in dir that all debug output is also written to.
func UseLogFile(dir string) (*os.File, error) {
	// Prepend the log filename with a timestamp.
	ts := time.Now().Format("2006-01-02-15-04-05")

	var err error
	logFile, err = os.CreateTemp(dir, fmt.Sprintf("kyle-%s-*.log", ts))
	if err != nil {
		return nil, err
	}

	return logFile, nil
}

// SetLogLevel sets the log level.
func SetLogLevel(lvl LogLevel) {
	logLevel = lvl
	if logLevel >= DebugLevel {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}

// GetLogLevel returns the current log level.
func GetLogLevel() LogLevel {
	return logLevel
}

// enabled reports whether a record at the slog level should be printed at the current LogLevel.
func enabled(level slog.Level) bool {
	switch {
	case level >= slog.LevelError:
		return true
	case level >= slog.LevelWarn:
		return logLevel >= WarnLevel
	case level >= slog.LevelInfo:
		return logLevel >= InfoLevel
	default:
		return logLevel >= DebugLevel
	}
}
