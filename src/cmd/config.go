// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"fmt"

	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/pkg/settings"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.CmdConfigShort,
}

var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   lang.CmdConfigListShort,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, pair := range userSettings.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", pair[0], pair[1])
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get KEY",
	Short:     lang.CmdConfigGetShort,
	Args:      cobra.ExactArgs(1),
	ValidArgs: settings.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := userSettings.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: lang.CmdConfigSetShort,
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := userSettings.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  "+lang.CmdConfigSetSuccess+"\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: lang.CmdConfigPathShort,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), userSettings.Path())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
