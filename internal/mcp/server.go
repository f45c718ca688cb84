// Package mcp serves the task store to AI assistants over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	"github.com/josephgoksu/todo/store"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName identifies the server during the MCP handshake.
const ServerName = "todo-mcp"

// NewServer builds an MCP server exposing the four task operations.
// Calls into ts are serialized across sessions.
func NewServer(ts store.TaskStore, version string, logger *slog.Logger) *mcpsdk.Server {
	if logger == nil {
		logger = slog.Default()
	}
	ts = store.Synchronized(ts)

	impl := &mcpsdk.Implementation{
		Name:    ServerName,
		Version: version,
	}
	opts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			logger.Info("MCP connection established", "store", ts.Location())
		},
	}
	server := mcpsdk.NewServer(impl, opts)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "add-task",
		Description: "Add a task. Requires {\"description\": \"...\"}; returns the created task with its id.",
	}, addTaskHandler(ts, logger))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-tasks",
		Description: "List tasks ordered by id. Optional {\"completed\": true|false} filter.",
	}, listTasksHandler(ts))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "complete-task",
		Description: "Mark a task as completed by id: {\"id\": 3}.",
	}, completeTaskHandler(ts, logger))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-task",
		Description: "Delete a task by id: {\"id\": 3}. Deleted ids are never reused.",
	}, deleteTaskHandler(ts, logger))

	return server
}

// Run serves ts over stdio until the client disconnects or ctx is done.
// stdout carries JSON-RPC only; diagnostics go to the logger.
func Run(ctx context.Context, ts store.TaskStore, version string, logger *slog.Logger) error {
	return NewServer(ts, version, logger).Run(ctx, mcpsdk.NewStdioTransport())
}
