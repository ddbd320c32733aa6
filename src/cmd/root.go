// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package cmd contains the CLI commands for kyle.
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/darhebkf/kyle/src/config"
	"github.com/darhebkf/kyle/src/config/lang"
	"github.com/darhebkf/kyle/src/message"
	"github.com/darhebkf/kyle/src/pkg/loader"
	"github.com/darhebkf/kyle/src/pkg/namespace"
	"github.com/darhebkf/kyle/src/pkg/runner"
	"github.com/darhebkf/kyle/src/pkg/utils"
	"github.com/darhebkf/kyle/src/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// taskFile is a specific task file to load instead of searching the directory
	taskFile string

	// workDir is the directory kyle runs in and resolves namespaces from
	workDir string

	// listAll adds the tasks of every namespace to the listing
	listAll bool
)

var rootCmd = &cobra.Command{
	Use:   "kyle [TASK] [ARGS...]",
	Short: lang.RootCmdShort,
	Long:  lang.RootCmdLong,
	Args:  cobra.ArbitraryArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cliSetup()
	},
	ValidArgsFunction: completeTasks,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTasks(cmd)
		}
		return runTask(cmd, args[0], args[1:])
	},
}

// Execute is the entrypoint for the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		message.Fatalf(nil, "%s", err.Error())
	}
}

func init() {
	initViper()

	// flags after TASK belong to the task
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVarP(&config.LogLevel, "log-level", "l", userSettings.LogLevel(), lang.RootCmdFlagLogLevel)
	rootCmd.PersistentFlags().BoolVar(&config.LogFile, "log-file", false, lang.RootCmdFlagLogFile)
	rootCmd.PersistentFlags().BoolVar(&config.NoColor, "no-color", false, lang.RootCmdFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&config.TempDirectory, "tmpdir", "", lang.RootCmdFlagTempDir)
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", lang.RootCmdFlagDir)

	rootCmd.Flags().StringVarP(&taskFile, "file", "f", "", lang.RootCmdFlagFile)
	rootCmd.Flags().BoolVar(&listAll, "list-all", false, lang.RootCmdFlagListAll)
}

func cliSetup() {
	// diagnostics never mix with task output
	pterm.SetDefaultOutput(os.Stderr)
	utils.ConfigureColor(config.NoColor)

	printViperConfigUsed()

	if config.LogLevel != "" {
		if lvl, ok := message.ParseLogLevel(config.LogLevel); ok {
			message.SetLogLevel(lvl)
			message.Debugf("Log level set to %s", config.LogLevel)
		} else {
			message.Warnf("%s", lang.RootCmdErrInvalidLogLevel)
		}
	}

	if config.LogFile {
		utils.UseLogFile(config.TempDirectory)
	}
}

// rootDir returns the absolute directory kyle runs in.
func rootDir() (string, error) {
	dir := workDir
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

func loaderOptions() loader.Options {
	return loader.Options{DefaultFormat: userSettings.DefaultFormat()}
}

// loadKylefile reads the task file given with --file, or the one found in dir.
func loadKylefile(dir string) (types.Kylefile, types.Source, error) {
	if taskFile == "" {
		return loader.Load(dir, loaderOptions())
	}

	path := taskFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return loader.LoadFile(path, loaderOptions())
}

func warnFallback(source types.Source) {
	if source != types.SourceKylefile && taskFile == "" {
		message.Warnf("%s", lang.WarnNoKylefile)
	}
}

func discover(dir string) []namespace.Discovered {
	return namespace.Discover(dir, namespace.WithIgnorePatterns(userSettings.DiscoveryIgnore()...))
}

func listTasks(cmd *cobra.Command) error {
	dir, err := rootDir()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	kf, source, err := loadKylefile(dir)
	discovered := discover(dir)

	var notFound *loader.NotFoundError
	if errors.As(err, &notFound) {
		if len(discovered) == 0 {
			return errors.New(lang.ErrNoKylefileHelp)
		}
		runner.PrintNamespaces(out, types.Includes{}, discovered)
		return nil
	}
	if err != nil {
		return err
	}
	warnFallback(source)

	rows := runner.TaskRows(kf, "")
	if listAll {
		rows = append(rows, runner.NamespaceRows(dir, kf.Includes, discovered, loaderOptions())...)
	}
	if err := runner.PrintTasks(out, rows); err != nil {
		return err
	}
	runner.PrintNamespaces(out, kf.Includes, discovered)
	return nil
}

func runTask(cmd *cobra.Command, identifier string, args []string) error {
	dir, err := rootDir()
	if err != nil {
		return err
	}

	kf, source, err := loadKylefile(dir)
	var notFound *loader.NotFoundError
	switch {
	case errors.As(err, &notFound) && namespace.ParseRef(identifier).IsNamespaced():
		// namespaced tasks run without a task file at the root
		kf = types.Kylefile{}
		kf.Normalize()
	case errors.As(err, &notFound):
		return errors.New(lang.ErrNoKylefileHelp)
	case err != nil:
		return err
	default:
		warnFallback(source)
	}

	message.SLog.Debug("Running task", "task", identifier, "args", strings.Join(args, " "), "dir", dir)
	r := runner.New(kf, dir, runner.Options{
		Loader: loaderOptions(),
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	err = r.RunRef(cmd.Context(), identifier, args)
	var missing *runner.NamespaceNotFoundError
	if errors.As(err, &missing) {
		if hint := missing.Hint(); hint != "" {
			message.Warnf("%s", hint)
		}
	}
	return err
}

// completeTasks completes the first argument with local and namespaced task names.
func completeTasks(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	dir, err := rootDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var includes types.Includes
	var rows [][]string
	if kf, _, err := loadKylefile(dir); err == nil {
		includes = kf.Includes
		rows = runner.TaskRows(kf, "")
	}
	rows = append(rows, runner.NamespaceRows(dir, includes, discover(dir), loaderOptions())...)

	completions := make([]string, 0, len(rows))
	for _, row := range rows {
		if row[1] == "" {
			completions = append(completions, row[0])
			continue
		}
		completions = append(completions, row[0]+"\t"+row[1])
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
