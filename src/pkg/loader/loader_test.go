// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/darhebkf/kyle/src/pkg/formats"
	"github.com/darhebkf/kyle/src/types"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		files  map[string]string
		source types.Source
		task   string
	}{
		"kylefile beats makefile": {
			files: map[string]string{
				"Kylefile": "# kyle: yaml\ntasks:\n  native:\n    run: echo native\n",
				"Makefile": "make:\n\techo make\n",
			},
			source: types.SourceKylefile,
			task:   "native",
		},
		"yaml extension beats toml": {
			files: map[string]string{
				"Kylefile.yaml": "tasks:\n  fromyaml:\n    run: echo y\n",
				"Kylefile.toml": "[tasks.fromtoml]\nrun = \"echo t\"\n",
			},
			source: types.SourceKylefile,
			task:   "fromyaml",
		},
		"makefile beats justfile": {
			files: map[string]string{
				"Makefile": "make:\n\techo make\n",
				"justfile": "just:\n    echo just\n",
			},
			source: types.SourceMakefile,
			task:   "make",
		},
		"gnumakefile": {
			files:  map[string]string{"GNUmakefile": "gnu:\n\techo gnu\n"},
			source: types.SourceMakefile,
			task:   "gnu",
		},
		"justfile only": {
			files:  map[string]string{"Justfile": "just:\n    echo just\n"},
			source: types.SourceJustfile,
			task:   "just",
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			for file, content := range tc.files {
				writeFile(t, dir, file, content)
			}

			kf, source, err := Load(dir, Options{DefaultFormat: formats.TOML})
			require.NoError(t, err)
			require.Equal(t, tc.source, source)
			require.Contains(t, kf.Tasks, tc.task)
			require.Len(t, kf.Tasks, 1)
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, _, err := Load(t.TempDir(), Options{})
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, Filenames(), notFound.Names)
	require.Equal(t, "no Kylefile found (looked for: Kylefile, Kylefile.yaml, Kylefile.yml, Kylefile.toml, "+
		"Makefile, makefile, GNUmakefile, justfile, Justfile)", err.Error())
}

func TestLoadIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Kylefile"), 0o755))
	writeFile(t, dir, "Makefile", "build:\n\ttrue\n")

	_, source, err := Load(dir, Options{})
	require.NoError(t, err)
	require.Equal(t, types.SourceMakefile, source)
}

func TestFormatDetection(t *testing.T) {
	t.Parallel()

	yamlBody := "tasks:\n  hello:\n    run: echo hi\n"
	tomlBody := "[tasks.hello]\nrun = \"echo hi\"\n"

	cases := map[string]struct {
		file     string
		content  string
		fallback formats.Format
		wantErr  string
	}{
		"yml extension":         {file: "Kylefile.yml", content: yamlBody, fallback: formats.TOML},
		"toml extension":        {file: "Kylefile.toml", content: tomlBody, fallback: formats.YAML},
		"yaml header":           {file: "Kylefile", content: "# kyle: yaml\n" + yamlBody, fallback: formats.TOML},
		"uppercase header":      {file: "Kylefile", content: "#kyle:TOML\n" + tomlBody, fallback: formats.YAML},
		"header with crlf":      {file: "Kylefile", content: "# kyle: toml\r\n" + tomlBody, fallback: formats.YAML},
		"default format":        {file: "Kylefile", content: tomlBody, fallback: formats.TOML},
		"default yaml":          {file: "Kylefile", content: yamlBody, fallback: formats.YAML},
		"unknown header":        {file: "Kylefile", content: "# kyle: xml\n", wantErr: "unknown format: xml"},
		"unsupported extension": {file: "Kylefile.json", content: "{}", wantErr: "unsupported file format: .json"},
		"syntax error":          {file: "Kylefile.yaml", content: "tasks: [\n", wantErr: "yaml parse error: "},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), tc.file, tc.content)

			kf, source, err := LoadFile(path, Options{DefaultFormat: tc.fallback})
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, types.SourceKylefile, source)
			require.Equal(t, "echo hi", kf.Tasks["hello"].Run)
		})
	}
}

func TestLoadFileErrorsTyped(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Kylefile", "# kyle: ini\n")
	_, _, err := LoadFile(path, Options{})
	var unknown *UnknownFormatError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "ini", unknown.Name)

	path = writeFile(t, t.TempDir(), "Kylefile.ini", "")
	_, _, err = LoadFile(path, Options{})
	var unsupported *UnsupportedExtensionError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, ".ini", unsupported.Ext)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Options{})
	require.ErrorContains(t, err, "does not exist")
}

func TestSourceOf(t *testing.T) {
	require.Equal(t, types.SourceMakefile, SourceOf("makefile"))
	require.Equal(t, types.SourceMakefile, SourceOf("build.mk"))
	require.Equal(t, types.SourceJustfile, SourceOf("Justfile"))
	require.Equal(t, types.SourceKylefile, SourceOf("Kylefile.toml"))
	require.Equal(t, -1, Precedence("README.md"))
	require.Less(t, Precedence("Kylefile"), Precedence("Makefile"))
}
