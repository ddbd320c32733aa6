// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package formats turns task definition files into a Kylefile
package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/darhebkf/kyle/src/types"
	goyaml "github.com/goccy/go-yaml"
)

// Format is a native Kylefile syntax
type Format int

const (
	// YAML is the yaml syntax
	YAML Format = iota
	// TOML is the toml syntax
	TOML
)

// All lists the native formats in the order extensions are checked
var All = []Format{YAML, TOML}

// Name returns the lowercase name used in headers and settings
func (f Format) Name() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

func (f Format) String() string {
	return f.Name()
}

// Extensions returns the file extensions, with leading dot, mapped to f
func (f Format) Extensions() []string {
	if f == TOML {
		return []string{".toml"}
	}
	return []string{".yaml", ".yml"}
}

// FromName maps a case-insensitive format name to a Format
func FromName(name string) (Format, bool) {
	for _, f := range All {
		if strings.EqualFold(name, f.Name()) {
			return f, true
		}
	}
	return YAML, false
}

// FromExtension maps an extension such as ".yml" to a Format
func FromExtension(ext string) (Format, bool) {
	for _, f := range All {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, true
			}
		}
	}
	return YAML, false
}

// ParseError is a syntax error reported by a native format decoder
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error: %s", e.Format.Name(), e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes content in the format f
func (f Format) Parse(content string) (types.Kylefile, error) {
	var kf types.Kylefile
	var err error
	switch f {
	case TOML:
		_, err = toml.Decode(content, &kf)
	default:
		err = goyaml.Unmarshal([]byte(content), &kf)
	}
	if err != nil {
		return types.Kylefile{}, &ParseError{Format: f, Err: err}
	}
	kf.Normalize()
	return kf, nil
}
