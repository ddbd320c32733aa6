// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package types contains all the types used by kyle.
package types

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/alecthomas/jsonschema"
)

// Include is a single (alias, path) pair declared in a Kylefile
type Include struct {
	Alias string
	Path  string
}

// Includes holds the sub-projects declared by a Kylefile. It is either absent, a list of
// paths (the alias is the last path component), or a map of alias to path.
type Includes struct {
	list    []string
	aliases map[string]string
}

// IncludeList creates Includes from a list of paths.
func IncludeList(paths ...string) Includes {
	return Includes{list: paths}
}

// IncludeMap creates Includes from an alias to path mapping.
func IncludeMap(aliases map[string]string) Includes {
	return Includes{aliases: aliases}
}

// IsEmpty reports whether no includes are declared.
func (i Includes) IsEmpty() bool {
	return len(i.list) == 0 && len(i.aliases) == 0
}

// Entries returns the declared includes; list order is kept, map entries are sorted by alias.
func (i Includes) Entries() []Include {
	if i.list != nil {
		entries := make([]Include, 0, len(i.list))
		for _, p := range i.list {
			entries = append(entries, Include{Alias: aliasFromPath(p), Path: p})
		}
		return entries
	}

	entries := make([]Include, 0, len(i.aliases))
	for alias, p := range i.aliases {
		entries = append(entries, Include{Alias: alias, Path: p})
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Alias < entries[b].Alias
	})
	return entries
}

// Lookup returns the path declared for alias.
func (i Includes) Lookup(alias string) (string, bool) {
	for _, entry := range i.Entries() {
		if entry.Alias == alias {
			return entry.Path, true
		}
	}
	return "", false
}

func aliasFromPath(p string) string {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	base := path.Base(clean)
	if base == "." || base == "/" || base == ".." {
		return p
	}
	return base
}

// UnmarshalYAML decodes either a sequence or a mapping of include paths.
func (i *Includes) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var list []string
	if err := unmarshal(&list); err == nil {
		*i = Includes{list: list}
		return nil
	}

	var aliases map[string]string
	if err := unmarshal(&aliases); err != nil {
		return fmt.Errorf("includes must be a list of paths or a map of alias to path: %w", err)
	}
	*i = Includes{aliases: aliases}
	return nil
}

// MarshalYAML encodes the includes in the same shape they were declared.
func (i Includes) MarshalYAML() (interface{}, error) {
	switch {
	case i.list != nil:
		return i.list, nil
	case i.aliases != nil:
		return i.aliases, nil
	default:
		return nil, nil
	}
}

// UnmarshalTOML decodes either an array or a table of include paths.
func (i *Includes) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("include path must be a string, got %T", item)
			}
			list = append(list, s)
		}
		*i = Includes{list: list}
	case map[string]interface{}:
		aliases := make(map[string]string, len(v))
		for alias, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("include path for %q must be a string, got %T", alias, item)
			}
			aliases[alias] = s
		}
		*i = Includes{aliases: aliases}
	default:
		return fmt.Errorf("includes must be an array of paths or a table of alias to path, got %T", data)
	}
	return nil
}

// JSONSchema describes the two accepted shapes of includes.
func (Includes) JSONSchema() *jsonschema.Type {
	return &jsonschema.Type{
		OneOf: []*jsonschema.Type{
			{Type: "array", Items: &jsonschema.Type{Type: "string"}},
			{Type: "object", PatternProperties: map[string]*jsonschema.Type{".*": {Type: "string"}}},
		},
	}
}
