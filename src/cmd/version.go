// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"fmt"

	"github.com/darhebkf/kyle/src/config"
	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   lang.CmdVersionShort,
	Long:    lang.CmdVersionLong,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.CLIVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
