// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package namespace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/loader"
	"github.com/darhebkf/kyle/src/types"
	"github.com/moby/patternmatcher"
	"github.com/moby/patternmatcher/ignorefile"
)

// IgnoreFileName is read from the discovery root for extra ignore patterns
const IgnoreFileName = ".kyleignore"

// skipDirs are never searched for sub-projects
var skipDirs = map[string]bool{
	"node_modules": true,
	"target":       true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"dist":         true,
	"build":        true,
	".next":        true,
	".nuxt":        true,
}

// Discovered is a sub-project found below the discovery root
type Discovered struct {
	// Alias is the directory relative to the root, with forward slashes
	Alias string
	// Path is the absolute directory
	Path string
	// Source is the kind of task file that won in the directory
	Source types.Source
}

type discoverOptions struct {
	ignore []string
}

// DiscoverOption configures Discover
type DiscoverOption func(*discoverOptions)

// WithIgnorePatterns prunes paths matching dockerignore-style patterns relative to the root.
func WithIgnorePatterns(patterns ...string) DiscoverOption {
	return func(o *discoverOptions) {
		o.ignore = append(o.ignore, patterns...)
	}
}

type candidate struct {
	Discovered
	precedence int
}

// Discover walks every directory strictly below root and returns one entry per directory holding
// a task file, sorted by alias. Unreadable entries are skipped rather than reported.
func Discover(root string, opts ...DiscoverOption) []Discovered {
	o := discoverOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	matcher := newMatcher(root, o.ignore)

	var candidates []candidate
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDirs[d.Name()] || ignored(matcher, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		precedence := loader.Precedence(d.Name())
		if precedence < 0 {
			return nil
		}
		dir := filepath.Dir(path)
		if dir == root {
			return nil
		}
		alias := filepath.ToSlash(filepath.Dir(rel))
		candidates = append(candidates, candidate{
			Discovered: Discovered{Alias: alias, Path: dir, Source: loader.SourceOf(d.Name())},
			precedence: precedence,
		})
		return nil
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Alias != candidates[j].Alias {
			return candidates[i].Alias < candidates[j].Alias
		}
		return candidates[i].precedence < candidates[j].precedence
	})

	found := make([]Discovered, 0, len(candidates))
	for i, c := range candidates {
		if i > 0 && candidates[i-1].Alias == c.Alias {
			continue
		}
		found = append(found, c.Discovered)
	}
	return found
}

// newMatcher compiles the ignore file at the root plus the given patterns. Invalid patterns are
// reported and dropped.
func newMatcher(root string, extra []string) *patternmatcher.PatternMatcher {
	var patterns []string
	if f, err := os.Open(filepath.Join(root, IgnoreFileName)); err == nil {
		fromFile, err := ignorefile.ReadAll(f)
		f.Close()
		if err != nil {
			message.Warnf("Unable to read %s: %s", IgnoreFileName, err.Error())
		} else {
			patterns = append(patterns, fromFile...)
		}
	}
	patterns = append(patterns, extra...)

	valid := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, err := patternmatcher.New([]string{pattern}); err != nil {
			message.Warnf("Ignoring invalid discovery ignore pattern %q: %s", pattern, err.Error())
			continue
		}
		valid = append(valid, pattern)
	}
	if len(valid) == 0 {
		return nil
	}

	matcher, err := patternmatcher.New(valid)
	if err != nil {
		message.Warnf("Ignoring discovery ignore patterns: %s", err.Error())
		return nil
	}
	return matcher
}

func ignored(matcher *patternmatcher.PatternMatcher, rel string) bool {
	if matcher == nil {
		return false
	}
	match, err := matcher.MatchesOrParentMatches(rel)
	return err == nil && match
}
