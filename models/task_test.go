package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTask_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "valid task",
			task: Task{
				ID:          1,
				Description: "buy milk",
				CreatedAt:   time.Now(),
			},
			wantErr: false,
		},
		{
			name: "empty description",
			task: Task{
				ID:          1,
				Description: "",
				CreatedAt:   time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero id",
			task: Task{
				ID:          0,
				Description: "buy milk",
				CreatedAt:   time.Now(),
			},
			wantErr: true,
		},
		{
			name: "negative id",
			task: Task{
				ID:          -3,
				Description: "buy milk",
				CreatedAt:   time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing created_at",
			task: Task{
				ID:          2,
				Description: "buy milk",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, loc)

	task := NewTask(4, "  walk dog \n", now)

	if task.ID != 4 {
		t.Errorf("ID = %d, want 4", task.ID)
	}
	if task.Description != "walk dog" {
		t.Errorf("Description = %q, want trimmed %q", task.Description, "walk dog")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", task.CreatedAt.Location())
	}
	if !task.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want instant %v", task.CreatedAt, now)
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{
		ID:          7,
		Description: "write report",
		Completed:   true,
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC),
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("failed to marshal task: %v", err)
	}

	for _, key := range []string{`"id":7`, `"description":"write report"`, `"completed":true`, `"created_at":"2025-01-02T03:04:05.000000006Z"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled task %s missing %s", data, key)
		}
	}
}

func TestTaskList_MaxIDAndSort(t *testing.T) {
	list := TaskList{Tasks: []Task{{ID: 5}, {ID: 2}, {ID: 9}, {ID: 1}}}

	if got := list.MaxID(); got != 9 {
		t.Errorf("MaxID() = %d, want 9", got)
	}
	if got := (TaskList{}).MaxID(); got != 0 {
		t.Errorf("MaxID() on empty list = %d, want 0", got)
	}

	SortByID(list.Tasks)
	for i, want := range []int{1, 2, 5, 9} {
		if list.Tasks[i].ID != want {
			t.Errorf("Tasks[%d].ID = %d, want %d", i, list.Tasks[i].ID, want)
		}
	}
}

func TestTaskList_Validation(t *testing.T) {
	valid := TaskList{
		NextID: 2,
		Tasks:  []Task{{ID: 1, Description: "ok", CreatedAt: time.Now()}},
	}
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("ValidateStruct() error = %v, expected no error", err)
	}

	invalid := TaskList{
		NextID: 2,
		Tasks:  []Task{{ID: 0, Description: ""}},
	}
	if err := ValidateStruct(invalid); err == nil {
		t.Error("expected validation error for task list with invalid task")
	}
}
