// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package loader finds and reads the task definition file of a directory
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/formats"
	"github.com/darhebkf/kyle/src/types"
)

var (
	// NativeNames are the Kylefile names, checked before any fallback
	NativeNames = []string{"Kylefile", "Kylefile.yaml", "Kylefile.yml", "Kylefile.toml"}

	// FallbackNames are the Makefile and justfile names, checked in order after NativeNames
	FallbackNames = []string{"Makefile", "makefile", "GNUmakefile", "justfile", "Justfile"}
)

// Options configures how a Kylefile is read
type Options struct {
	// DefaultFormat is used for a Kylefile with neither an extension nor a header
	DefaultFormat formats.Format
}

// Filenames returns every recognized file name in precedence order.
func Filenames() []string {
	names := make([]string, 0, len(NativeNames)+len(FallbackNames))
	names = append(names, NativeNames...)
	return append(names, FallbackNames...)
}

// Precedence returns the position of name in Filenames, or -1 if name is not a task file.
func Precedence(name string) int {
	for i, candidate := range Filenames() {
		if candidate == name {
			return i
		}
	}
	return -1
}

// SourceOf returns the parser used for a file with the given base name.
func SourceOf(name string) types.Source {
	switch {
	case name == "Makefile" || name == "makefile" || name == "GNUmakefile" || strings.HasSuffix(name, ".mk"):
		return types.SourceMakefile
	case strings.EqualFold(name, "justfile") || strings.HasSuffix(name, ".just"):
		return types.SourceJustfile
	default:
		return types.SourceKylefile
	}
}

// Find returns the path of the task file that Load would read in dir.
func Find(dir string) (string, error) {
	for _, name := range Filenames() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", &NotFoundError{Dir: dir, Names: Filenames()}
}

// Load reads the first task file found in dir. A Kylefile always wins over a Makefile or
// justfile, and files in one directory are never merged.
func Load(dir string, opts Options) (types.Kylefile, types.Source, error) {
	path, err := Find(dir)
	if err != nil {
		return types.Kylefile{}, types.SourceKylefile, err
	}
	return LoadFile(path, opts)
}

// LoadFile reads a specific task file.
func LoadFile(path string, opts Options) (types.Kylefile, types.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Kylefile{}, types.SourceKylefile, fmt.Errorf("task file %s does not exist", path)
		}
		return types.Kylefile{}, types.SourceKylefile, err
	}

	name := filepath.Base(path)
	source := SourceOf(name)
	message.Debugf("Loading %s as %s", path, source)

	switch source {
	case types.SourceMakefile:
		return formats.ParseMakefile(string(content)), source, nil
	case types.SourceJustfile:
		return formats.ParseJustfile(string(content)), source, nil
	}

	format, err := detectFormat(name, string(content), opts.DefaultFormat)
	if err != nil {
		return types.Kylefile{}, source, err
	}

	kf, err := format.Parse(string(content))
	if err != nil {
		return types.Kylefile{}, source, err
	}
	return kf, source, nil
}

// detectFormat picks the native format by extension, then by header, then the default.
func detectFormat(name, content string, fallback formats.Format) (formats.Format, error) {
	if ext := filepath.Ext(name); ext != "" {
		format, ok := formats.FromExtension(ext)
		if !ok {
			return fallback, &UnsupportedExtensionError{Ext: ext}
		}
		return format, nil
	}

	header, ok := formats.ParseHeader(content)
	if !ok {
		return fallback, nil
	}
	format, ok := formats.FromName(header)
	if !ok {
		return fallback, &UnknownFormatError{Name: header}
	}
	return format, nil
}
