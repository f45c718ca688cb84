/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task. Its ID is never handed out again.

Without an ID on a terminal, pick the task from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ts, err := openStore()
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	id, err := resolveTaskID(ts, args, "Select a task to delete", nil)
	switch {
	case errors.Is(err, ui.ErrCancelled):
		cmd.Println("Cancelled.")
		return nil
	case errors.Is(err, ErrNoTasksFound):
		cmd.Println("No tasks found.")
		return nil
	case err != nil:
		return err
	}

	found, err := ts.Delete(id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if !found {
		printNotFound(cmd.ErrOrStderr(), id)
		return nil
	}

	switch {
	case isJSON():
		return printJSON(cmd.OutOrStdout(), types.DeleteResponse{
			ID:      id,
			Deleted: true,
			Message: fmt.Sprintf("Task %d deleted", id),
		})
	case isQuiet():
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted successfully!\n", id)
	}
	return nil
}
