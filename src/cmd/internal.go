// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/jsonschema"
	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/types"
	"github.com/spf13/cobra"
)

var internalCmd = &cobra.Command{
	Use:     "internal",
	Aliases: []string{"dev"},
	Hidden:  true,
	Short:   lang.CmdInternalShort,
}

var configSchemaCmd = &cobra.Command{
	Use:     "config-schema",
	Aliases: []string{"c"},
	Short:   lang.CmdInternalConfigSchemaShort,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema := jsonschema.Reflect(&types.Kylefile{})
		output, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: %w", lang.CmdInternalConfigSchemaErr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(internalCmd)

	internalCmd.AddCommand(configSchemaCmd)
}
