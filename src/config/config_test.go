// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestSettingsPath(t *testing.T) {
	t.Setenv("KYLE_CONFIG", "")
	home, err := homedir.Dir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "kyle", "config.toml"), SettingsPath())

	t.Setenv("KYLE_CONFIG", "/etc/kyle.toml")
	require.Equal(t, "/etc/kyle.toml", SettingsPath())

	t.Setenv("KYLE_CONFIG", "~/kyle.toml")
	require.Equal(t, filepath.Join(home, "kyle.toml"), SettingsPath())
}
