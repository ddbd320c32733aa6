// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package config contains configuration strings for kyle
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// KylefileName is the file written by `kyle init` and the first name searched for
	KylefileName = "Kylefile"

	// SettingsFileName is the name of the persisted settings file
	SettingsFileName = "config.toml"
)

var (
	// CLIVersion track the version of the CLI
	CLIVersion = "unset"

	// EnvPrefix is the prefix for viper configs and environment overrides
	EnvPrefix = "kyle"

	// LogLevel is the log level set from the command line
	LogLevel string

	// LogFile enables writing diagnostics to a temporary log file
	LogFile bool

	// NoColor disables colored output
	NoColor bool

	// TempDirectory is the directory to store temporary files
	TempDirectory string
)

// SettingsPath returns the location of the persisted settings file, ~/.config/kyle/config.toml
// unless KYLE_CONFIG points elsewhere.
func SettingsPath() string {
	if cfgFile := os.Getenv("KYLE_CONFIG"); cfgFile != "" {
		if expanded, err := homedir.Expand(cfgFile); err == nil {
			return expanded
		}
		return cfgFile
	}
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", EnvPrefix, SettingsFileName)
}
