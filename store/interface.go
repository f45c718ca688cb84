package store

import "github.com/josephgoksu/todo/models"

// TaskStore defines the operations front-ends use to manage tasks.
// Every mutating call persists the whole collection before it returns.
type TaskStore interface {
	// Add creates a task with the next id and returns it.
	// The description is trimmed; an empty description fails with ErrInvalidDescription.
	Add(description string) (models.Task, error)

	// List returns every task ordered by ascending id.
	// An empty store returns an empty slice.
	List() []models.Task

	// Get looks up a single task by id.
	Get(id int) (models.Task, bool)

	// Complete marks the task as completed.
	// It returns false, without touching the backing location, when the id does not exist.
	Complete(id int) (bool, error)

	// Delete removes the task. Its id is never handed out again.
	// It returns false, without touching the backing location, when the id does not exist.
	Delete(id int) (bool, error)

	// Restore replaces all tasks with the given ones, typically read from a backup.
	// The id counter never moves backwards.
	Restore(tasks []models.Task) error

	// Location describes where the tasks are persisted.
	Location() string

	// Close releases the backing resources.
	Close() error
}

// Persistence saves and loads a whole snapshot of the store.
// Implementations replace the durable representation in full on every Save.
type Persistence interface {
	// Load reads the snapshot. A missing or empty location yields an empty TaskList.
	Load() (models.TaskList, error)

	// Save durably replaces the snapshot.
	Save(list models.TaskList) error

	// Location describes the backing location (file path, database name).
	Location() string

	// Close releases any resources held by the backend.
	Close() error
}
