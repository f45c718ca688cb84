/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage telemetry settings",
	Long: `View and manage anonymous usage telemetry.

Telemetry is off by default. When enabled and an API key is configured
(telemetry.apiKey), todo sends the command name, backend and duration,
plus one event per task added, completed, deleted or restored, tagged with
where it came from (cli, http or mcp). Task descriptions are never sent.`,
	Args: cobra.NoArgs,
	RunE: runTelemetryStatus,
}

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current telemetry status",
	Args:  cobra.NoArgs,
	RunE:  runTelemetryStatus,
}

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable anonymous telemetry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetry(cmd, true)
	},
}

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable anonymous telemetry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetry(cmd, false)
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryStatusCmd, telemetryEnableCmd, telemetryDisableCmd)
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetryStatus(cmd *cobra.Command, args []string) error {
	ts, err := telemetryStore()
	if err != nil {
		return err
	}
	state, err := ts.Load()
	if err != nil {
		return fmt.Errorf("failed to read telemetry status: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), state)
	}

	out := cmd.OutOrStdout()
	if state.IsEnabled() {
		fmt.Fprintln(out, "Telemetry: enabled")
		fmt.Fprintf(out, "   Anonymous ID: %s\n", state.AnonymousID)
		if GetConfig().Telemetry.APIKey == "" {
			fmt.Fprintln(out, "   No API key configured, so nothing is sent.")
		}
		fmt.Fprintln(out, "   To disable: todo telemetry disable")
	} else {
		fmt.Fprintln(out, "Telemetry: disabled")
		fmt.Fprintln(out, "   To enable: todo telemetry enable")
	}
	return nil
}

func setTelemetry(cmd *cobra.Command, enabled bool) error {
	ts, err := telemetryStore()
	if err != nil {
		return err
	}
	state, err := ts.Load()
	if err != nil {
		return fmt.Errorf("failed to read telemetry status: %w", err)
	}

	if enabled {
		state.Enable()
	} else {
		state.Disable()
	}
	if err := ts.Save(state); err != nil {
		return fmt.Errorf("failed to save telemetry status: %w", err)
	}

	if enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "Telemetry enabled. Thank you!")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Telemetry disabled.")
	}
	return nil
}
