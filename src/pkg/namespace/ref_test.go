// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package namespace

import (
	"path/filepath"
	"testing"

	"github.com/darhebkf/kyle/src/types"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	t.Parallel()

	cases := map[string]TaskRef{
		"build":              {TaskName: "build"},
		"backend:build":      {Namespace: "backend", TaskName: "build"},
		"apps/frontend.test": {Namespace: "apps/frontend", TaskName: "test"},
		":build":             {TaskName: ":build"},
		"backend:":           {TaskName: "backend:"},
		".hidden":            {TaskName: ".hidden"},
		"a.b:c":              {Namespace: "a.b", TaskName: "c"},
		"a:b.c":              {Namespace: "a:b", TaskName: "c"},
		"":                   {TaskName: ""},
	}

	for input, want := range cases {
		input, want := input, want
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got := ParseRef(input)
			require.Equal(t, want, got)
			if got.IsNamespaced() {
				require.NotEmpty(t, got.TaskName)
			}
		})
	}
}

func TestRefKey(t *testing.T) {
	require.Equal(t, "build", ParseRef("build").Key())
	require.Equal(t, "backend:build", ParseRef("backend:build").Key())
	require.Equal(t, "apps/web:test", ParseRef("apps/web.test").Key())
	require.Equal(t, "apps/web:test", ParseRef("apps/web.test").String())
}

func TestResolve(t *testing.T) {
	root := filepath.Join("project")

	require.Equal(t, filepath.Join(root, "backend"), Resolve(root, "backend", types.Includes{}))
	require.Equal(t, filepath.Join(root, "apps", "frontend"), Resolve(root, "apps/frontend", types.Includes{}))

	includes := types.IncludeMap(map[string]string{"web": "apps/frontend"})
	require.Equal(t, filepath.Join(root, "apps", "frontend"), Resolve(root, "web", includes))

	listed := types.IncludeList("services/api")
	require.Equal(t, filepath.Join(root, "services", "api"), Resolve(root, "api", listed))
	require.Equal(t, filepath.Join(root, "other"), Resolve(root, "other", listed))
}
