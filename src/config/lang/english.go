// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package lang contains the language strings in english used by kyle
package lang

// Root
const (
	RootCmdShort              = "kyle - task runner"
	RootCmdLong               = "Runs tasks from a Kylefile, Makefile or justfile, including tasks in sub-project namespaces (ns:task)."
	RootCmdFlagLogLevel       = "Log level for the runner. Valid options are: warn, info, debug, trace"
	RootCmdErrInvalidLogLevel = "Invalid log level. Valid options are: warn, info, debug, trace."
	RootCmdFlagLogFile        = "Write diagnostics to a log file in the temporary directory"
	RootCmdFlagNoColor        = "Disable colored output"
	RootCmdFlagTempDir        = "Specify the temporary directory to use for intermediate files"
	RootCmdFlagFile           = "Path to a task file to use instead of searching the directory"
	RootCmdFlagDir            = "Run as if kyle was started in this directory"
	RootCmdFlagListAll        = "List the tasks of every namespace as well as the local tasks"
	RootCmdErrExecute         = "Failed to execute command"
)

// Listing
const (
	ListAvailableTasks   = "Available tasks:"
	ListIncludedSpaces   = "Namespaces (from includes):"
	ListDiscoveredSpaces = "Discovered namespaces:"
	ListHeaderName       = "Name"
	ListHeaderDesc       = "Description"
)

// Guidance
const (
	WarnNoKylefile    = "no Kylefile found, run 'kyle init' to create one"
	ErrNoKylefileHelp = "No Kylefile found in current directory.\n\n  Run 'kyle init' to create one."
)

// Version
const (
	CmdVersionShort = "Shows the version of the running kyle binary"
	CmdVersionLong  = "Displays the version of the kyle release that the current binary was built from."
)

// Init
const (
	CmdInitShort     = "Create a new Kylefile"
	CmdInitFlagYAML  = "Use the YAML format"
	CmdInitFlagTOML  = "Use the TOML format"
	CmdInitFlagForce = "Overwrite an existing Kylefile"
	CmdInitCreated   = "Created %s"
	CmdInitErrExists = "%s already exists, use --force to overwrite it"
	CmdInitErrFormat = "use either --yaml or --toml (not both)"
	CmdInitLong      = "Writes a Kylefile to the current directory. NAME defaults to the directory name and the format to the default_format setting."
)

// Config
const (
	CmdConfigShort      = "Configure kyle settings"
	CmdConfigListShort  = "Show all settings"
	CmdConfigGetShort   = "Get a config value"
	CmdConfigSetShort   = "Set a config value"
	CmdConfigPathShort  = "Show config file path"
	CmdConfigSetSuccess = "%s = %s"
)

// Internal
const (
	CmdInternalShort             = "Internal cmds used by kyle"
	CmdInternalConfigSchemaShort = "Generates a JSON schema for the Kylefile format"
	CmdInternalConfigSchemaErr   = "Unable to generate the Kylefile schema"
)

// Viper
const (
	CmdViperErrLoadingConfigFile = "failed to load config file: %s"
	CmdViperInfoUsingConfigFile  = "Using config file %s"
)

// Runner
const (
	RunnerAnnounceTask      = "→ %s"
	RunnerAnnounceNamespace = "→ [%s]"
	RunnerHintDotSeparator  = "'%s' was read as task '%s' in namespace '%s' because '.' separates namespaces. " +
		"File prerequisites such as main.o cannot be used as task dependencies."
)
