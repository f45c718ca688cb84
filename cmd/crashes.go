/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/spf13/cobra"
)

var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List saved crash logs",
	Long: `List the crash logs todo saved after an unexpected error, oldest first.

Use --last to print the most recent one in full, including its stack trace.`,
	Args: cobra.NoArgs,
	RunE: runCrashes,
}

func init() {
	crashesCmd.Flags().Bool("last", false, "show the most recent crash log in full")
	rootCmd.AddCommand(crashesCmd)
}

func runCrashes(cmd *cobra.Command, args []string) error {
	paths, err := logger.ListCrashLogs()
	if err != nil {
		return fmt.Errorf("list crash logs: %w", err)
	}
	out := cmd.OutOrStdout()

	last, _ := cmd.Flags().GetBool("last")
	if last && len(paths) > 1 {
		paths = paths[len(paths)-1:]
	}

	logs := make([]logger.CrashLog, 0, len(paths))
	for _, p := range paths {
		entry, err := logger.ReadCrashLog(p)
		if err != nil {
			LogError("skip unreadable crash log", err)
			continue
		}
		logs = append(logs, entry)
	}

	if isJSON() {
		return printJSON(out, logs)
	}
	if len(logs) == 0 {
		fmt.Fprintln(out, "No crash logs found.")
		return nil
	}
	if last {
		printCrashLog(out, logs[0])
		return nil
	}
	for _, l := range logs {
		fmt.Fprintf(out, "%s  %-10s %s\n", l.Timestamp.Local().Format(time.DateTime), l.Command, l.PanicValue)
	}
	return nil
}

func printCrashLog(w io.Writer, l logger.CrashLog) {
	fmt.Fprintf(w, "Time:    %s\n", l.Timestamp.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "Version: %s (%s, %s/%s)\n", l.Version, l.GoVersion, l.OS, l.Arch)
	fmt.Fprintf(w, "Command: %s %s\n", l.Command, l.Args)
	if l.DataFile != "" {
		fmt.Fprintf(w, "Data:    %s\n", l.DataFile)
	}
	fmt.Fprintf(w, "Panic:   %s\n\n%s", l.PanicValue, l.StackTrace)
}
