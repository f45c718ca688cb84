/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found")
	// version is the application version.
	version = "0.1.0"
)

var (
	appLogger       = logger.Discard()
	telemetryClient telemetry.Client = telemetry.NewNoopClient()
	commandStart    time.Time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A small task tracker for the command line.",
	Long: `todo keeps a list of tasks in a single snapshot file (or a SQL database)
and lets you add, list, complete and delete them.

The same store can be served over HTTP (todo serve) or to MCP clients (todo mcp).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		telemetryClient.Track(telemetry.EventCommandError, telemetry.CommandProperties(
			commandName(), GetConfig().Data.Backend, time.Since(commandStart)))
		_ = telemetryClient.Close()
		HandleFatalError("Error: "+err.Error(), err)
	}
}

// GetVersion returns the CLI version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentPreRunE = setupCommand
	rootCmd.PersistentPostRun = finishCommand

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todo.yaml or $HOME/.todo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "print only essential output")
	rootCmd.PersistentFlags().String("data-file", "", "task data file (default is $XDG_DATA_HOME/todo-list-app/tasks.json)")
	rootCmd.PersistentFlags().String("backend", config.DefaultBackend, "storage backend: file, sqlite or mysql")
	rootCmd.PersistentFlags().String("format", "", "snapshot format for the file backend: json, yaml or toml")
}

// setupCommand loads configuration and prepares logging, crash context and telemetry.
func setupCommand(cmd *cobra.Command, args []string) error {
	commandStart = time.Now()
	if err := InitConfig(); err != nil {
		return err
	}
	cfg := GetConfig()

	appLogger = logger.New(cmd.ErrOrStderr(), cfg.Verbose)

	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath(), args)
	logger.SetDataFile(cfg.Data.File)
	if dir, err := config.GetDataDir(); err == nil {
		logger.SetBasePath(dir)
	}

	telemetryClient = newTelemetryClient()
	return nil
}

func finishCommand(cmd *cobra.Command, args []string) {
	telemetryClient.Track(telemetry.EventCommandExecuted, telemetry.CommandProperties(
		cmd.Name(), GetConfig().Data.Backend, time.Since(commandStart)))
	if err := telemetryClient.Close(); err != nil {
		LogError("close telemetry client", err)
	}
}

func commandName() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return rootCmd.Name()
}
