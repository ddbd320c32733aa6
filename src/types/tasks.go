// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package types contains all the types used by kyle.
package types

// Kylefile represents the tasks declared by one task definition file
type Kylefile struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Name of the project"`
	Includes Includes        `json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes,omitempty" jsonschema:"description=Sub-projects addressable as namespaces, either a list of paths or a map of alias to path"`
	Tasks    map[string]Task `json:"tasks" yaml:"tasks" toml:"tasks" jsonschema:"description=The tasks that can be run, keyed by name"`
}

// Task represents a single task
type Task struct {
	Desc string   `json:"desc,omitempty" yaml:"desc,omitempty" toml:"desc,omitempty" jsonschema:"description=Description of the task"`
	Run  string   `json:"run,omitempty" yaml:"run,omitempty" toml:"run,omitempty" jsonschema:"description=Shell command to run"`
	Deps []string `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty" jsonschema:"description=Tasks to run first, optionally prefixed with a namespace (ns:task)"`
}

// Normalize fills in defaults for fields a parser may leave unset.
func (kf *Kylefile) Normalize() {
	if kf.Tasks == nil {
		kf.Tasks = map[string]Task{}
	}
	for name, task := range kf.Tasks {
		if task.Deps == nil {
			task.Deps = []string{}
			kf.Tasks[name] = task
		}
	}
}

// Source identifies which parser produced a Kylefile
type Source int

const (
	// SourceKylefile is the native yaml/toml format
	SourceKylefile Source = iota
	// SourceMakefile is the Makefile subset
	SourceMakefile
	// SourceJustfile is the justfile subset
	SourceJustfile
)

func (s Source) String() string {
	switch s {
	case SourceMakefile:
		return "Makefile"
	case SourceJustfile:
		return "justfile"
	default:
		return "Kylefile"
	}
}
