// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package runner

import (
	"fmt"
	"strings"

	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/pkg/namespace"
)

// TaskNotFoundError is returned when a task name is not defined
type TaskNotFoundError struct {
	Name string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Name)
}

// NamespaceNotFoundError is returned when a namespace does not resolve to a directory
type NamespaceNotFoundError struct {
	Namespace string
	// Ref is the identifier the namespace was parsed from
	Ref string
}

func (e *NamespaceNotFoundError) Error() string {
	return fmt.Sprintf("namespace not found: %s", e.Namespace)
}

// Hint explains a namespace that only came from a `.` in the identifier, empty otherwise.
func (e *NamespaceNotFoundError) Hint() string {
	ref := namespace.ParseRef(e.Ref)
	if !ref.IsNamespaced() || e.Ref != ref.Namespace+"."+ref.TaskName {
		return ""
	}
	return fmt.Sprintf(lang.RunnerHintDotSeparator, e.Ref, ref.TaskName, ref.Namespace)
}

// NamespaceLoadError wraps a failure to read the task file of a namespace
type NamespaceLoadError struct {
	Namespace string
	Err       error
}

func (e *NamespaceLoadError) Error() string {
	return fmt.Sprintf("failed to load namespace '%s': %s", e.Namespace, e.Err.Error())
}

func (e *NamespaceLoadError) Unwrap() error {
	return e.Err
}

// DependencyError wraps the failure of a dependency
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency '%s' failed: %s", e.Dependency, e.Err.Error())
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// TaskFailedError is returned when a task command exits non-zero or cannot be started
type TaskFailedError struct {
	Task string
	// ExitCode is set when the command ran and exited non-zero
	ExitCode int
	Err      error
}

func (e *TaskFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("task '%s' failed: exit code: %d", e.Task, e.ExitCode)
	}
	return fmt.Sprintf("task '%s' failed: %s", e.Task, e.Err.Error())
}

func (e *TaskFailedError) Unwrap() error {
	return e.Err
}

// CircularDependencyError is returned when a task is reached again while it is still running
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(e.Chain, " -> "))
}
