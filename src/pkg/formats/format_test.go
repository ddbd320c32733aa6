// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/darhebkf/kyle/src/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const yamlKylefile = `name: demo
version: 2
includes:
  - apps/frontend
  - backend
tasks:
  build:
    desc: Build the project
    run: go build ./...
  test:
    desc: Run tests
    run: go test ./...
    deps: [build]
  deploy:
    run: ./deploy.sh
    deps: ["infra:provision", test]
`

const tomlKylefile = `name = "demo"

[includes]
web = "apps/frontend"

[tasks.build]
desc = "Build the project"
run = "go build ./..."

[tasks.test]
desc = "Run tests"
run = "go test ./..."
deps = ["build"]

[tasks.clean]
`

func TestFormatLookup(t *testing.T) {
	f, ok := FromName("YAML")
	require.True(t, ok)
	require.Equal(t, YAML, f)

	f, ok = FromName("toml")
	require.True(t, ok)
	require.Equal(t, TOML, f)

	_, ok = FromName("json")
	require.False(t, ok)

	for ext, want := range map[string]Format{".yaml": YAML, ".yml": YAML, ".toml": TOML} {
		f, ok := FromExtension(ext)
		require.True(t, ok, ext)
		require.Equal(t, want, f, ext)
	}
	_, ok = FromExtension(".json")
	require.False(t, ok)
}

func TestParseYAML(t *testing.T) {
	kf, err := YAML.Parse(yamlKylefile)
	require.NoError(t, err)

	require.Equal(t, "demo", kf.Name)
	require.Equal(t, []types.Include{
		{Alias: "frontend", Path: "apps/frontend"},
		{Alias: "backend", Path: "backend"},
	}, kf.Includes.Entries())

	want := map[string]types.Task{
		"build":  {Desc: "Build the project", Run: "go build ./...", Deps: []string{}},
		"test":   {Desc: "Run tests", Run: "go test ./...", Deps: []string{"build"}},
		"deploy": {Run: "./deploy.sh", Deps: []string{"infra:provision", "test"}},
	}
	if diff := cmp.Diff(want, kf.Tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLIncludeMap(t *testing.T) {
	kf, err := YAML.Parse("includes:\n  api: services/api\ntasks: {}\n")
	require.NoError(t, err)

	path, ok := kf.Includes.Lookup("api")
	require.True(t, ok)
	require.Equal(t, "services/api", path)
	require.Empty(t, kf.Tasks)
}

func TestParseTOML(t *testing.T) {
	kf, err := TOML.Parse(tomlKylefile)
	require.NoError(t, err)

	require.Equal(t, "demo", kf.Name)
	path, ok := kf.Includes.Lookup("web")
	require.True(t, ok)
	require.Equal(t, "apps/frontend", path)

	want := map[string]types.Task{
		"build": {Desc: "Build the project", Run: "go build ./...", Deps: []string{}},
		"test":  {Desc: "Run tests", Run: "go test ./...", Deps: []string{"build"}},
		"clean": {Deps: []string{}},
	}
	if diff := cmp.Diff(want, kf.Tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTOMLIncludeList(t *testing.T) {
	kf, err := TOML.Parse("includes = [\"libs/core\"]\n\n[tasks.a]\nrun = \"true\"\n")
	require.NoError(t, err)
	require.Equal(t, []types.Include{{Alias: "core", Path: "libs/core"}}, kf.Includes.Entries())
}

func TestParseErrors(t *testing.T) {
	_, err := YAML.Parse("tasks:\n  build: [\n")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, YAML, parseErr.Format)
	require.Contains(t, err.Error(), "yaml parse error: ")

	_, err = TOML.Parse("[tasks.build\nrun = 1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "toml parse error: ")
}

func TestHeader(t *testing.T) {
	format, ok := ParseHeader("# kyle: YAML\ntasks: {}")
	require.True(t, ok)
	require.Equal(t, "yaml", format)

	format, ok = ParseHeader("#kyle:toml\r\n[tasks.a]")
	require.True(t, ok)
	require.Equal(t, "toml", format)

	_, ok = ParseHeader("tasks: {}\n# kyle: yaml")
	require.False(t, ok)

	_, ok = ParseHeader("# build tasks\ntasks: {}")
	require.False(t, ok)

	require.Equal(t, "# kyle: toml", TOML.HeaderLine())
	require.Equal(t, "# kyle: yaml", YAML.HeaderLine())
}

func TestTemplate(t *testing.T) {
	for _, f := range All {
		t.Run(f.Name(), func(t *testing.T) {
			content := Template(f, "my \"app\"")
			require.True(t, strings.HasPrefix(content, f.HeaderLine()+"\n"))

			kf, err := f.Parse(content)
			require.NoError(t, err)
			require.Equal(t, "my \"app\"", kf.Name)
			require.Equal(t, "echo hello", kf.Tasks["hello"].Run)
		})
	}
}
