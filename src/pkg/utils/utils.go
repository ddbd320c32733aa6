// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package utils provides utility fns for kyle
package utils

import (
	"io"
	"os"

	"github.com/darhebkf/kyle/src/message"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// UseLogFile writes output to stderr and a log file created in dir.
func UseLogFile(dir string) {
	logFile, err := message.UseLogFile(dir)
	if err != nil {
		message.Warnf("Error saving a log file to a temporary directory: %s", err.Error())
		return
	}

	pterm.SetDefaultOutput(io.MultiWriter(os.Stderr, logFile))
	message.Infof("Saving log file to %s", logFile.Name())
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColor disables styled output when requested or when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTerminal(os.Stdout) {
		pterm.DisableStyling()
		return
	}
	pterm.EnableStyling()
}
