// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import (
	"fmt"
	"strings"
)

const headerPrefix = "kyle:"

// HeaderLine returns the `# kyle: <format>` line that marks an extensionless file as f.
func (f Format) HeaderLine() string {
	return fmt.Sprintf("# %s %s", headerPrefix, f.Name())
}

// ParseHeader returns the lowercased format named by a `# kyle: <format>` first line.
func ParseHeader(content string) (string, bool) {
	first, _, _ := strings.Cut(content, "\n")
	line := strings.TrimSpace(first)
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if !strings.HasPrefix(line, headerPrefix) {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, headerPrefix))), true
}
