// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darhebkf/kyle/src/config"
	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/formats"
	"github.com/spf13/cobra"
)

var (
	initYAML  bool
	initTOML  bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init [NAME]",
	Short: lang.CmdInitShort,
	Long:  lang.CmdInitLong,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if initYAML && initTOML {
			return errors.New(lang.CmdInitErrFormat)
		}

		dir, err := rootDir()
		if err != nil {
			return err
		}

		name := filepath.Base(dir)
		if len(args) > 0 {
			name = args[0]
		}

		format := userSettings.DefaultFormat()
		switch {
		case initYAML:
			format = formats.YAML
		case initTOML:
			format = formats.TOML
		}

		path := filepath.Join(dir, config.KylefileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf(lang.CmdInitErrExists, config.KylefileName)
		}

		if err := os.WriteFile(path, []byte(formats.Template(format, name)), 0o644); err != nil {
			return err
		}
		message.Successf(lang.CmdInitCreated, config.KylefileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initYAML, "yaml", false, lang.CmdInitFlagYAML)
	initCmd.Flags().BoolVar(&initTOML, "toml", false, lang.CmdInitFlagTOML)
	initCmd.Flags().BoolVar(&initForce, "force", false, lang.CmdInitFlagForce)
}
