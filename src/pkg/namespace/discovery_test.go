// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package namespace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darhebkf/kyle/src/types"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("tasks: {}\n"), 0o644))
}

func aliases(found []Discovered) []string {
	out := []string{}
	for _, d := range found {
		out = append(out, d.Alias)
	}
	return out
}

func TestDiscoverPrecedence(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "backend/Makefile")
	touch(t, root, "backend/Kylefile")
	touch(t, root, "backend/justfile")

	found := Discover(root)
	require.Len(t, found, 1)
	require.Equal(t, "backend", found[0].Alias)
	require.Equal(t, types.SourceKylefile, found[0].Source)
	require.Equal(t, filepath.Join(root, "backend"), found[0].Path)
}

func TestDiscoverGNUmakefileAfterKylefile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "svc/GNUmakefile")
	touch(t, root, "svc/Kylefile.toml")

	found := Discover(root)
	require.Len(t, found, 1)
	require.Equal(t, types.SourceKylefile, found[0].Source)
}

func TestDiscoverTree(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Kylefile")
	touch(t, root, "apps/web/justfile")
	touch(t, root, "apps/api/Makefile")
	touch(t, root, "libs/core/Kylefile.yaml")
	touch(t, root, "node_modules/pkg/Makefile")
	touch(t, root, "apps/web/node_modules/dep/Makefile")
	touch(t, root, ".git/hooks/Makefile")
	touch(t, root, "build/Makefile")
	touch(t, root, "docs/README.md")

	found := Discover(root)
	require.Equal(t, []string{"apps/api", "apps/web", "libs/core"}, aliases(found))
	require.Equal(t, types.SourceMakefile, found[0].Source)
	require.Equal(t, types.SourceJustfile, found[1].Source)
	require.Equal(t, types.SourceKylefile, found[2].Source)
}

func TestDiscoverIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "apps/web/Kylefile")
	touch(t, root, "examples/demo/Kylefile")
	touch(t, root, "legacy/old/Makefile")
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFileName), []byte("# comment\nlegacy\n"), 0o644))

	found := Discover(root, WithIgnorePatterns("examples/**"))
	require.Equal(t, []string{"apps/web"}, aliases(found))
}

func TestDiscoverInvalidPatternKeepsOthers(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "keep/Kylefile")
	touch(t, root, "skipme/Kylefile")
	touch(t, root, "vendored/Makefile")
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFileName), []byte("skipme\n"), 0o644))

	found := Discover(root, WithIgnorePatterns("[", "vendored"))
	require.Equal(t, []string{"keep"}, aliases(found))
}

func TestDiscoverMissingRoot(t *testing.T) {
	require.Empty(t, Discover(filepath.Join(t.TempDir(), "missing")))
}
