/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:     "complete [id]",
	Aliases: []string{"done"},
	Short:   "Mark a task as complete",
	Long: `Mark a task as complete. Completing a task twice is harmless.

Without an ID on a terminal, pick one of the open tasks from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	ts, err := openStore()
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	id, err := resolveTaskID(ts, args, "Select a task to complete", func(t models.Task) bool { return !t.Completed })
	switch {
	case errors.Is(err, ui.ErrCancelled):
		cmd.Println("Cancelled.")
		return nil
	case errors.Is(err, ErrNoTasksFound):
		cmd.Println("No open tasks.")
		return nil
	case err != nil:
		return err
	}

	found, err := ts.Complete(id)
	if err != nil {
		return fmt.Errorf("complete task %d: %w", id, err)
	}
	if !found {
		printNotFound(cmd.ErrOrStderr(), id)
		return nil
	}

	if isJSON() {
		task, _ := ts.Get(id)
		return printJSON(cmd.OutOrStdout(), task)
	}
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as complete!\n", id)
	}
	return nil
}
