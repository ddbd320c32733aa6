// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import (
	"regexp"
	"strings"

	"github.com/darhebkf/kyle/src/types"
)

var (
	makeTargetRe = regexp.MustCompile(`^([A-Za-z0-9_.%][A-Za-z0-9_.%\-]*)[ \t]*:([^=].*)?$`)
	makePhonyRe  = regexp.MustCompile(`^\.PHONY\s*:`)
)

// ParseMakefile extracts the targets of a Makefile as tasks. Variables, conditionals and
// pattern rules are not evaluated; lines that are not understood are ignored.
func ParseMakefile(content string) types.Kylefile {
	kf := types.Kylefile{Tasks: map[string]types.Task{}}
	lines := splitLines(content)
	var desc pendingDesc

	for i := 0; i < len(lines); {
		line := lines[i]

		if makePhonyRe.MatchString(line) {
			desc.clear()
			i++
			continue
		}

		if text, ok := commentText(line); ok {
			if text != "" {
				desc.set(text)
			}
			i++
			continue
		}

		if m := makeTargetRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			if strings.HasPrefix(name, ".") || strings.Contains(name, "%") {
				desc.clear()
				i++
				continue
			}

			run, next := readBody(lines, i+1, isMakeBody, stripMakePrefixes)
			kf.Tasks[name] = types.Task{
				Desc: desc.take(),
				Run:  run,
				Deps: makeDeps(m[2]),
			}
			i = next
			continue
		}

		// stray recipe lines keep the description, anything else drops it
		if strings.TrimSpace(line) == "" || !isMakeBody(line) {
			desc.clear()
		}
		i++
	}

	kf.Normalize()
	return kf
}

func isMakeBody(line string) bool {
	return strings.HasPrefix(line, "\t")
}

// stripMakePrefixes removes one quiet (@) and one ignore-errors (-) marker in either order.
func stripMakePrefixes(cmd string) string {
	seenQuiet, seenIgnore := false, false
	for {
		switch {
		case !seenQuiet && strings.HasPrefix(cmd, "@"):
			cmd, seenQuiet = cmd[1:], true
		case !seenIgnore && strings.HasPrefix(cmd, "-"):
			cmd, seenIgnore = cmd[1:], true
		default:
			return cmd
		}
	}
}

// makeDeps returns the prerequisites of a target line. Target-specific variable assignments
// (`target: VAR = value`) contribute no prerequisites.
func makeDeps(rest string) []string {
	// double-colon rules
	rest = strings.TrimPrefix(rest, ":")
	if idx := strings.Index(rest, "#"); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "|"); idx >= 0 {
		// order-only prerequisites are still prerequisites
		rest = rest[:idx] + " " + rest[idx+1:]
	}

	tokens := strings.Fields(rest)
	if idx := strings.Index(rest, "="); idx >= 0 {
		tokens = strings.Fields(strings.TrimRight(rest[:idx], ":+?!"))
		if len(tokens) > 0 {
			tokens = tokens[:len(tokens)-1]
		}
	}

	deps := []string{}
	for _, token := range tokens {
		if strings.HasPrefix(token, "$") || strings.Contains(token, "%") {
			continue
		}
		deps = append(deps, token)
	}
	return deps
}
