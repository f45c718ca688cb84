/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [description...]",
	Short: "Add a new task",
	Long: `Add a new task. All arguments are joined into the description.

Without arguments on a terminal, you are prompted for the description.

Examples:
  todo add Buy milk
  todo add "Write the quarterly report"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	if strings.TrimSpace(description) == "" && ui.IsInteractive() && !isJSON() {
		d, err := ui.PromptDescription()
		if errors.Is(err, ui.ErrCancelled) {
			cmd.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		description = d
	}

	ts, err := openStore()
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	task, err := ts.Add(description)
	if err != nil {
		if errors.Is(err, store.ErrInvalidDescription) {
			return err
		}
		return fmt.Errorf("add task: %w", err)
	}

	switch {
	case isJSON():
		return printJSON(cmd.OutOrStdout(), task)
	case isQuiet():
		fmt.Fprintln(cmd.OutOrStdout(), task.ID)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully! (ID: %d)\n", task.ID)
	}
	return nil
}
