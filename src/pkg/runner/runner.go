// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package runner provides functions for running tasks from a Kylefile
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/loader"
	"github.com/darhebkf/kyle/src/pkg/namespace"
	"github.com/darhebkf/kyle/src/types"
)

// Options configures a Runner
type Options struct {
	// Loader is used to read the task files of namespaces
	Loader loader.Options

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner holds the necessary data to run tasks from one Kylefile
type Runner struct {
	Kylefile types.Kylefile
	// Dir is the working directory of every command
	Dir string
	// Label names the runner in announcements and cycle reports, empty at the root
	Label string

	completed map[string]bool
	session   *session
}

// session is shared by every runner created during one top-level run
type session struct {
	root     string
	includes types.Includes
	opts     Options
	// runners caches one runner per namespace directory
	runners    map[string]*Runner
	inProgress []frame
}

// frame is a task currently resolving its dependencies or running its command
type frame struct {
	dir   string
	task  string
	label string
}

// New creates a runner for kf rooted at dir. Namespaces are resolved relative to dir and the
// includes of kf.
func New(kf types.Kylefile, dir string, opts Options) *Runner {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	dir = absDir(dir)
	r := &Runner{
		Kylefile:  kf,
		Dir:       dir,
		completed: map[string]bool{},
		session: &session{
			root:     dir,
			includes: kf.Includes,
			opts:     opts,
			runners:  map[string]*Runner{},
		},
	}
	r.session.runners[dir] = r
	return r
}

// Run runs taskName after its dependencies. args are appended to the task's own command only.
func (r *Runner) Run(ctx context.Context, taskName string, args []string) error {
	task, ok := r.Kylefile.Tasks[taskName]
	if !ok {
		return &TaskNotFoundError{Name: taskName}
	}

	if err := r.enter(taskName); err != nil {
		return err
	}
	defer r.leave()

	for _, dep := range task.Deps {
		if err := r.runDependency(ctx, dep); err != nil {
			return &DependencyError{Dependency: dep, Err: err}
		}
	}

	if r.completed[taskName] {
		return nil
	}

	if err := r.execute(ctx, taskName, task.Run, args); err != nil {
		return err
	}
	r.completed[taskName] = true
	return nil
}

// RunRef runs a task identifier that may name a namespace.
func (r *Runner) RunRef(ctx context.Context, identifier string, args []string) error {
	ref := namespace.ParseRef(identifier)
	if !ref.IsNamespaced() {
		return r.Run(ctx, ref.TaskName, args)
	}

	nested, err := r.namespaceRunner(ref.Namespace, identifier)
	if err != nil {
		return err
	}
	r.announce(lang.RunnerAnnounceNamespace, ref.Namespace)
	return nested.Run(ctx, ref.TaskName, args)
}

// runDependency runs one dependency unless its canonical key already completed.
func (r *Runner) runDependency(ctx context.Context, dep string) error {
	ref := namespace.ParseRef(dep)
	key := ref.Key()
	if r.completed[key] {
		message.SLog.Debug("Skipping completed dependency", "dependency", key)
		return nil
	}

	if !ref.IsNamespaced() {
		return r.Run(ctx, ref.TaskName, nil)
	}

	nested, err := r.namespaceRunner(ref.Namespace, dep)
	if err != nil {
		return err
	}
	r.announce(lang.RunnerAnnounceNamespace, ref.Namespace)
	if err := nested.Run(ctx, ref.TaskName, nil); err != nil {
		return err
	}
	r.completed[key] = true
	return nil
}

// namespaceRunner returns the runner for ns, loading its task file the first time the
// directory is reached. identifier is the reference ns was parsed from.
func (r *Runner) namespaceRunner(ns, identifier string) (*Runner, error) {
	s := r.session
	dir := absDir(namespace.Resolve(s.root, ns, s.includes))

	if nested, ok := s.runners[dir]; ok {
		return nested, nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &NamespaceNotFoundError{Namespace: ns, Ref: identifier}
	}

	kf, _, err := loader.Load(dir, s.opts.Loader)
	if err != nil {
		return nil, &NamespaceLoadError{Namespace: ns, Err: err}
	}

	message.SLog.Debug("Loaded namespace", "namespace", ns, "dir", dir)
	nested := &Runner{
		Kylefile:  kf,
		Dir:       dir,
		Label:     ns,
		completed: map[string]bool{},
		session:   s,
	}
	s.runners[dir] = nested
	return nested, nil
}

// enter records taskName as in progress, failing if it already is.
func (r *Runner) enter(taskName string) error {
	s := r.session
	for i, f := range s.inProgress {
		if f.dir == r.Dir && f.task == taskName {
			chain := make([]string, 0, len(s.inProgress)-i+1)
			for _, seen := range s.inProgress[i:] {
				chain = append(chain, qualify(seen.label, seen.task))
			}
			chain = append(chain, qualify(r.Label, taskName))
			return &CircularDependencyError{Chain: chain}
		}
	}
	s.inProgress = append(s.inProgress, frame{dir: r.Dir, task: taskName, label: r.Label})
	return nil
}

func (r *Runner) leave() {
	s := r.session
	s.inProgress = s.inProgress[:len(s.inProgress)-1]
}

func (r *Runner) execute(ctx context.Context, taskName, command string, args []string) error {
	r.announce(lang.RunnerAnnounceTask, taskName)

	if len(args) > 0 {
		command = command + " " + strings.Join(args, " ")
	}
	if strings.TrimSpace(command) == "" {
		message.SLog.Debug("Task has no command", "task", taskName)
		return nil
	}

	name, shellArgs := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, shellArgs...)
	cmd.Dir = r.Dir
	// *os.File streams are handed to the child directly, other writers are piped
	cmd.Stdin = r.session.opts.Stdin
	cmd.Stdout = r.session.opts.Stdout
	cmd.Stderr = r.session.opts.Stderr

	message.SLog.Debug("Running command", "task", taskName, "dir", r.Dir, "command", command)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return &TaskFailedError{Task: taskName, ExitCode: exitErr.ExitCode()}
		}
		return &TaskFailedError{Task: taskName, Err: err}
	}
	return nil
}

func (r *Runner) announce(format, name string) {
	fmt.Fprintf(r.session.opts.Stdout, format+"\n", name)
}

func qualify(label, task string) string {
	if label == "" {
		return task
	}
	return label + ":" + task
}

func absDir(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
