// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package runner

import (
	"fmt"
	"io"
	"sort"

	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/loader"
	"github.com/darhebkf/kyle/src/pkg/namespace"
	"github.com/darhebkf/kyle/src/types"
	"github.com/pterm/pterm"
)

// TaskRows returns one (name, description) row per task sorted by name. A non-empty prefix is
// joined to each name as `prefix:name`.
func TaskRows(kf types.Kylefile, prefix string) [][]string {
	names := make([]string, 0, len(kf.Tasks))
	for name := range kf.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		label := name
		if prefix != "" {
			label = prefix + ":" + name
		}
		rows = append(rows, []string{label, kf.Tasks[name].Desc})
	}
	return rows
}

// NamespaceRows loads every include and discovered namespace below root and returns their tasks
// as `alias:task` rows. Namespaces that fail to load are reported and skipped.
func NamespaceRows(root string, includes types.Includes, discovered []namespace.Discovered, opts loader.Options) [][]string {
	var rows [][]string
	seen := map[string]bool{}

	add := func(alias, dir string) {
		dir = absDir(dir)
		if seen[dir] {
			return
		}
		seen[dir] = true

		kf, _, err := loader.Load(dir, opts)
		if err != nil {
			message.Warnf("Unable to list namespace %s: %s", alias, err.Error())
			return
		}
		rows = append(rows, TaskRows(kf, alias)...)
	}

	for _, include := range includes.Entries() {
		add(include.Alias, namespace.Resolve(root, include.Alias, includes))
	}
	for _, d := range discovered {
		add(d.Alias, d.Path)
	}
	return rows
}

// PrintTasks writes the task table.
func PrintTasks(w io.Writer, rows [][]string) error {
	fmt.Fprintln(w, lang.ListAvailableTasks)
	if len(rows) == 0 {
		return nil
	}

	data := append([][]string{{lang.ListHeaderName, lang.ListHeaderDesc}}, rows...)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

// PrintNamespaces writes the declared includes and the discovered namespaces.
func PrintNamespaces(w io.Writer, includes types.Includes, discovered []namespace.Discovered) {
	if !includes.IsEmpty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, lang.ListIncludedSpaces)
		for _, include := range includes.Entries() {
			fmt.Fprintf(w, "  %s -> %s\n", include.Alias, include.Path)
		}
	}

	if len(discovered) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, lang.ListDiscoveredSpaces)
		for _, d := range discovered {
			if d.Source == types.SourceKylefile {
				fmt.Fprintf(w, "  %s\n", d.Alias)
				continue
			}
			fmt.Fprintf(w, "  %s (%s)\n", d.Alias, d.Source)
		}
	}
}
