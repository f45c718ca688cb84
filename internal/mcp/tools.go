package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
	"github.com/josephgoksu/todo/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func addTaskHandler(ts store.TaskStore, logger *slog.Logger) mcpsdk.ToolHandlerFor[types.AddTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AddTaskParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		task, err := ts.Add(params.Arguments.Description)
		if err != nil {
			return nil, toolError(logger, "add-task", err)
		}

		msg := fmt.Sprintf("Task %d added: %s", task.ID, task.Description)
		return &mcpsdk.CallToolResultFor[types.TaskResponse]{
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
			StructuredContent: types.TaskResponse{Task: task, Message: msg},
		}, nil
	}
}

func listTasksHandler(ts store.TaskStore) mcpsdk.ToolHandlerFor[types.ListTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListTasksParams]) (*mcpsdk.CallToolResultFor[types.TaskListResponse], error) {
		tasks := ts.List()
		if want := params.Arguments.Completed; want != nil {
			filtered := make([]models.Task, 0, len(tasks))
			for _, t := range tasks {
				if t.Completed == *want {
					filtered = append(filtered, t)
				}
			}
			tasks = filtered
		}

		return &mcpsdk.CallToolResultFor[types.TaskListResponse]{
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: formatTaskList(tasks)}},
			StructuredContent: types.TaskListResponse{Tasks: tasks, Count: len(tasks)},
		}, nil
	}
}

func completeTaskHandler(ts store.TaskStore, logger *slog.Logger) mcpsdk.ToolHandlerFor[types.TaskIDParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.TaskIDParams]) (*mcpsdk.CallToolResultFor[types.TaskResponse], error) {
		id := params.Arguments.ID
		if id <= 0 {
			return nil, invalidID(id)
		}

		task, found, err := store.CompleteAndGet(ts, id)
		if err != nil {
			return nil, toolError(logger, "complete-task", err)
		}
		if !found {
			return nil, types.NewTaskNotFoundError(id)
		}

		msg := fmt.Sprintf("Task %d marked as complete", id)
		return &mcpsdk.CallToolResultFor[types.TaskResponse]{
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
			StructuredContent: types.TaskResponse{Task: task, Message: msg},
		}, nil
	}
}

func deleteTaskHandler(ts store.TaskStore, logger *slog.Logger) mcpsdk.ToolHandlerFor[types.TaskIDParams, types.DeleteResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.TaskIDParams]) (*mcpsdk.CallToolResultFor[types.DeleteResponse], error) {
		id := params.Arguments.ID
		if id <= 0 {
			return nil, invalidID(id)
		}

		ok, err := ts.Delete(id)
		if err != nil {
			return nil, toolError(logger, "delete-task", err)
		}
		if !ok {
			return nil, types.NewTaskNotFoundError(id)
		}

		msg := fmt.Sprintf("Task %d deleted", id)
		return &mcpsdk.CallToolResultFor[types.DeleteResponse]{
			Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
			StructuredContent: types.DeleteResponse{ID: id, Deleted: true, Message: msg},
		}, nil
	}
}

func invalidID(id int) error {
	return types.NewMCPError(types.ErrCodeValidation, "Task ID must be a positive integer", map[string]interface{}{
		"field": "id",
		"value": id,
	})
}

// toolError converts a store error into a structured MCP error.
func toolError(logger *slog.Logger, tool string, err error) error {
	if errors.Is(err, store.ErrInvalidDescription) {
		return types.NewMCPError(types.ErrCodeValidation, err.Error(), map[string]interface{}{"field": "description"})
	}
	logger.Error("MCP tool failed", "tool", tool, "error", err)
	return types.NewMCPError(types.ErrCodeStorage, err.Error(), nil)
}

func formatTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	out := fmt.Sprintf("%d task(s):\n", len(tasks))
	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		out += fmt.Sprintf("%3d %s %s\n", t.ID, mark, t.Description)
	}
	return out
}
