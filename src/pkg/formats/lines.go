// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import "strings"

// pendingDesc is the description carried from a comment block to the next recognized task.
// It has two states: empty (ok == false) and pending(text).
type pendingDesc struct {
	text string
	ok   bool
}

func (p *pendingDesc) set(text string) {
	p.text, p.ok = text, true
}

func (p *pendingDesc) clear() {
	p.text, p.ok = "", false
}

// take returns the pending text, if any, and resets to the empty state.
func (p *pendingDesc) take() string {
	text := p.text
	p.clear()
	return text
}

// splitLines splits content on newlines accepting CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// readBody collects the indented command lines that follow a task header starting at lines[start].
// Blank lines inside the body are skipped, the body ends at the first non-indented line.
// It returns the commands joined with " && " and the index of the first line after the body.
func readBody(lines []string, start int, indented func(string) bool, strip func(string) string) (string, int) {
	var commands []string
	i := start
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !indented(line) {
			break
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if cmd := strip(trimmed); strings.TrimSpace(cmd) != "" {
			commands = append(commands, cmd)
		}
	}
	return strings.Join(commands, " && "), i
}

// commentText returns the text of a full-line comment, without the leading # and whitespace.
func commentText(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "#")), true
}
