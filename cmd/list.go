/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/internal/watch"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

const clearScreen = "\033[H\033[2J"

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tasks",
	Long: `List all tasks in ascending ID order.

With --watch, the list is redrawn whenever the data file changes
(file and sqlite backends only).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolP("watch", "w", false, "redraw the list when the data file changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	watching, _ := cmd.Flags().GetBool("watch")
	if watching {
		return watchList(cmd)
	}

	tasks, err := loadTasks()
	if err != nil {
		return err
	}
	return renderTasks(cmd.OutOrStdout(), tasks)
}

// loadTasks opens the store, reads the current tasks and closes it again.
func loadTasks() ([]models.Task, error) {
	ts, err := openStore()
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()
	return ts.List(), nil
}

func renderTasks(w io.Writer, tasks []models.Task) error {
	if isJSON() {
		if tasks == nil {
			tasks = []models.Task{}
		}
		return printJSON(w, tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return nil
	}

	if isQuiet() {
		for _, t := range tasks {
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, ui.StatusMark(t.Completed), t.Description)
		}
		return nil
	}

	fmt.Fprint(w, ui.TaskTable(tasks, ui.TerminalWidth()).Render())

	open := 0
	for _, t := range tasks {
		if !t.Completed {
			open++
		}
	}
	fmt.Fprintf(w, "\n%d task(s), %d open\n", len(tasks), open)
	return nil
}

func watchList(cmd *cobra.Command) error {
	cfg := GetConfig().Data
	if cfg.Backend == config.BackendMySQL {
		return fmt.Errorf("--watch is not supported for the %s backend", cfg.Backend)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(cfg.File, watch.WithLogger(appLogger))
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.File, err)
	}
	defer func() { _ = w.Close() }()

	out := cmd.OutOrStdout()
	redraw := func() {
		tasks, err := loadTasks()
		fmt.Fprint(out, clearScreen)
		if err != nil {
			PrintError("Error: could not read tasks", err)
			return
		}
		if err := renderTasks(out, tasks); err != nil {
			LogError("render tasks", err)
		}
		fmt.Fprintf(out, "\nWatching %s (Ctrl+C to stop)\n", cfg.File)
	}

	redraw()
	if err := w.Run(ctx, redraw); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
