/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/todo/internal/mcp"
	"github.com/josephgoksu/todo/internal/telemetry"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server over stdio",
	Long: `Expose the task store to MCP clients over stdin/stdout.

Tools: add-task, list-tasks, complete-task, delete-task.

Example client configuration:
  {"command": "todo", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ts, err := openStoreFor(telemetry.SurfaceMCP)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout belongs to the protocol, so logs stay on stderr.
	if err := mcp.Run(ctx, ts, version, appLogger); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
