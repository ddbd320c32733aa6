// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import (
	"fmt"
	"strings"
)

// Template returns the content of a new Kylefile for project name. The first line is the
// `# kyle: <format>` header so the file needs no extension.
func Template(f Format, name string) string {
	var sb strings.Builder
	sb.WriteString(f.HeaderLine() + "\n")

	if f == TOML {
		fmt.Fprintf(&sb, "name = %q\n", name)
		sb.WriteString("\n[tasks.hello]\n")
		sb.WriteString("desc = \"An example task\"\n")
		sb.WriteString("run = \"echo hello\"\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "name: %q\n\n", name)
	sb.WriteString("tasks:\n")
	sb.WriteString("  hello:\n")
	sb.WriteString("    desc: An example task\n")
	sb.WriteString("    run: echo hello\n")
	return sb.String()
}
