// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package message contains functions to print messages to the screen
package message

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
)

const (
	// termWidth sets the width of full width elements like paragraphs
	termWidth = 100
)

// Debugf prints a debug message with a given format.
func Debugf(format string, a ...any) {
	message := fmt.Sprintf(format, a...)
	debugPrinter(2, message)
}

// Warnf prints a warning message with a given format.
func Warnf(format string, a ...any) {
	message := paragraph(format, a...)
	pterm.Warning.Println(message)
}

// Successf prints a success message with a given format.
func Successf(format string, a ...any) {
	message := paragraph(format, a...)
	pterm.Success.Println(message)
}

// errorf prints an error message with a given format.
func errorf(format string, a ...any) {
	message := paragraph(format, a...)
	errorPrinter(2).Println(message)
}

// Infof prints an info message with a given format.
func Infof(format string, a ...any) {
	message := paragraph(format, a...)
	pterm.Info.Println(message)
}

// paragraph formats text into a paragraph matching the TermWidth
func paragraph(format string, a ...any) string {
	return pterm.DefaultParagraph.WithMaxWidth(termWidth).Sprintf(format, a...)
}

func debugPrinter(offset int, a ...any) {
	showLines := logLevel == TraceLevel
	printer := pterm.Debug.WithShowLineNumber(showLines).WithLineNumberOffset(offset)
	now := time.Now().Format(time.RFC3339)
	// prepend to a
	a = append([]any{now, " - "}, a...)

	printer.Println(a...)

	// Always write to the log file
	if logFile != nil {
		pterm.Debug.
			WithShowLineNumber(true).
			WithLineNumberOffset(offset).
			WithDebugger(false).
			WithWriter(logFile).
			Println(a...)
	}
}

func errorPrinter(offset int) *pterm.PrefixPrinter {
	return pterm.Error.WithShowLineNumber(logLevel == TraceLevel).WithLineNumberOffset(offset)
}

// Fatalf prints an error message with a given format and exits with a non-zero status.
func Fatalf(err error, format string, a ...any) {
	message := paragraph(format, a...)
	if err != nil {
		debugPrinter(2, err.Error())
	}
	errorPrinter(2).Println(message)
	os.Exit(1)
}
