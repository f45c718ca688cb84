package store

import (
	"fmt"

	"github.com/josephgoksu/todo/models"
)

// Backup writes the current tasks of ts to dst as a standalone snapshot.
func Backup(ts TaskStore, dst Persistence) (int, error) {
	tasks := ts.List()
	list := models.TaskList{NextID: nextIDFor(tasks), Tasks: tasks}
	if err := dst.Save(list); err != nil {
		return 0, fmt.Errorf("failed to write backup to %s: %w", dst.Location(), err)
	}
	return len(tasks), nil
}

// RestoreFrom replaces the tasks of ts with the snapshot held by src.
func RestoreFrom(ts TaskStore, src Persistence) (int, error) {
	list, err := src.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to read backup %s: %w", src.Location(), err)
	}
	if err := ts.Restore(list.Tasks); err != nil {
		return 0, err
	}
	return len(list.Tasks), nil
}

func nextIDFor(tasks []models.Task) int {
	return models.TaskList{Tasks: tasks}.MaxID() + 1
}
