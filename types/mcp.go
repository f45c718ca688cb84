/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import "github.com/josephgoksu/todo/models"

// MCP Tool Parameter Types

// AddTaskParams for creating a new task
type AddTaskParams struct {
	Description string `json:"description" mcp:"Task description (required)"`
}

// ListTasksParams for listing tasks
type ListTasksParams struct {
	Completed *bool `json:"completed,omitempty" mcp:"Only return tasks with this completion state"`
}

// TaskIDParams addresses a single task for complete-task and delete-task
type TaskIDParams struct {
	ID int `json:"id" mcp:"Task ID (required)"`
}

// MCP Tool Response Types

// TaskResponse wraps a single task
type TaskResponse struct {
	Task    models.Task `json:"task"`
	Message string      `json:"message,omitempty"`
}

// TaskListResponse wraps the task list
type TaskListResponse struct {
	Tasks []models.Task `json:"tasks"`
	Count int           `json:"count"`
}

// DeleteResponse reports a deleted task id
type DeleteResponse struct {
	ID      int    `json:"id"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}
