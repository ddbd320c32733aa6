// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package namespace resolves task references and finds sub-projects below a root directory
package namespace

import (
	"path/filepath"
	"strings"

	"github.com/darhebkf/kyle/src/types"
)

// separators may split a namespace from a task name
const separators = ":."

// TaskRef is a parsed task identifier such as `build`, `backend:build` or `apps/web.test`
type TaskRef struct {
	Namespace string
	TaskName  string
}

// ParseRef splits an identifier at its right-most separator. A separator in the first or last
// position does not split, so `:build` and `backend:` are plain task names.
func ParseRef(identifier string) TaskRef {
	idx := strings.LastIndexAny(identifier, separators)
	if idx <= 0 || idx == len(identifier)-1 {
		return TaskRef{TaskName: identifier}
	}
	return TaskRef{Namespace: identifier[:idx], TaskName: identifier[idx+1:]}
}

// IsNamespaced reports whether the reference names a namespace
func (r TaskRef) IsNamespaced() bool {
	return r.Namespace != ""
}

// Key is the canonical name of the reference, `namespace:task` or `task`
func (r TaskRef) Key() string {
	if !r.IsNamespaced() {
		return r.TaskName
	}
	return r.Namespace + ":" + r.TaskName
}

func (r TaskRef) String() string {
	return r.Key()
}

// Resolve returns the directory of namespace ns below root. An alias declared in includes maps
// to its path; any other namespace is itself a relative path.
func Resolve(root, ns string, includes types.Includes) string {
	rel := ns
	if path, ok := includes.Lookup(ns); ok {
		rel = path
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
