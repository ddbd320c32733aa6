// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import (
	"regexp"
	"strings"

	"github.com/darhebkf/kyle/src/types"
)

var (
	justRecipeRe    = regexp.MustCompile(`^@?([a-zA-Z_][a-zA-Z0-9_\-]*)(?:\s+[^:]+)?:\s*(.*)$`)
	justInertRe     = regexp.MustCompile(`^(set|alias)\s+`)
	justAttributeRe = regexp.MustCompile(`^\[([^\]]*)\]\s*$`)
	justCallRe      = regexp.MustCompile(`\([^)]*\)`)
)

// ParseJustfile extracts the recipes of a justfile as tasks. Parameters, settings and
// expressions are not evaluated; lines that are not understood are ignored.
func ParseJustfile(content string) types.Kylefile {
	kf := types.Kylefile{Tasks: map[string]types.Task{}}
	lines := splitLines(content)
	var desc pendingDesc
	private := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if justInertRe.MatchString(line) {
			desc.clear()
			private = false
			i++
			continue
		}

		if text, ok := commentText(line); ok {
			// shebang-style comments are never descriptions
			if text != "" && !strings.HasPrefix(text, "!") {
				desc.set(text)
			}
			i++
			continue
		}

		// attributes sit between a recipe's comment and its header
		if m := justAttributeRe.FindStringSubmatch(line); m != nil {
			for _, attr := range strings.Split(m[1], ",") {
				if strings.TrimSpace(attr) == "private" {
					private = true
				}
			}
			i++
			continue
		}

		if m := justRecipeRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(m[2], "=") {
			name := m[1]
			if strings.HasPrefix(name, "_") || private {
				desc.clear()
				private = false
				i++
				continue
			}

			run, next := readBody(lines, i+1, isJustBody, stripJustPrefix)
			kf.Tasks[name] = types.Task{
				Desc: desc.take(),
				Run:  run,
				Deps: justDeps(m[2]),
			}
			i = next
			continue
		}

		if strings.TrimSpace(line) == "" || !isJustBody(line) {
			desc.clear()
			private = false
		}
		i++
	}

	kf.Normalize()
	return kf
}

func isJustBody(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func stripJustPrefix(cmd string) string {
	return strings.TrimPrefix(cmd, "@")
}

// justDeps returns the dependencies listed after a recipe header. Calls with arguments
// (`(build "release")`) and dependencies after && that run later are left out.
func justDeps(rest string) []string {
	if idx := strings.Index(rest, "#"); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "&&"); idx >= 0 {
		rest = rest[:idx]
	}
	rest = justCallRe.ReplaceAllString(rest, " ")

	deps := []string{}
	for _, token := range strings.Fields(rest) {
		if strings.HasPrefix(token, "(") || strings.Contains(token, "=") {
			continue
		}
		deps = append(deps, token)
	}
	return deps
}
