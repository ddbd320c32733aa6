// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"github.com/darhebkf/kyle/src/config"
	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/settings"
)

var (
	// userSettings are the persisted settings used by the cmd package
	userSettings *settings.Settings

	// holds any error from reading in the settings file
	vConfigError error
)

func initViper() {
	// Already initialized by some other command
	if userSettings != nil {
		return
	}

	userSettings, vConfigError = settings.Load(config.SettingsPath(), config.EnvPrefix)
}

func printViperConfigUsed() {
	if vConfigError != nil {
		message.Warnf(lang.CmdViperErrLoadingConfigFile, vConfigError.Error())
		return
	}
	message.Debugf(lang.CmdViperInfoUsingConfigFile, userSettings.Path())
}
