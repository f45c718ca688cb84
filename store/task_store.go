package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/josephgoksu/todo/models"
)

// Store is the TaskStore implementation shared by every front-end.
// It keeps the whole collection in memory and writes a full snapshot
// through its Persistence after each mutation. Store is not safe for
// concurrent use; wrap it with Synchronized when callers overlap.
type Store struct {
	persistence Persistence
	tasks       map[int]models.Task
	nextID      int
	now         func() time.Time
	logger      *slog.Logger
}

var _ TaskStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads the snapshot held by p and returns a ready store.
// A missing or empty backing location yields an empty store whose first id is 1.
// Unparseable contents fail with ErrDataCorruption and are never repaired.
func Open(p Persistence, opts ...Option) (*Store, error) {
	s := &Store{
		persistence: p,
		tasks:       make(map[int]models.Task),
		nextID:      1,
		now:         time.Now,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if lp, ok := p.(interface{ setLogger(*slog.Logger) }); ok {
		lp.setLogger(s.logger)
	}

	list, err := p.Load()
	if err != nil {
		return nil, asStorageError("load", p.Location(), err)
	}
	tasks, nextID, err := indexTasks(list)
	if err != nil {
		return nil, corruptionError("load", p.Location(), err)
	}
	s.tasks = tasks
	s.nextID = nextID

	s.logger.Debug("task store loaded", "location", p.Location(), "tasks", len(s.tasks), "next_id", s.nextID)
	return s, nil
}

// indexTasks builds the id map for a snapshot and derives the next id.
// The result is never lower than the persisted counter nor lower than max(id)+1.
func indexTasks(list models.TaskList) (map[int]models.Task, int, error) {
	tasks := make(map[int]models.Task, len(list.Tasks))
	for _, t := range list.Tasks {
		if t.ID <= 0 {
			return nil, 0, fmt.Errorf("task id %d is not positive", t.ID)
		}
		if _, dup := tasks[t.ID]; dup {
			return nil, 0, fmt.Errorf("duplicate task id %d", t.ID)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		tasks[t.ID] = t
	}

	nextID := list.MaxID() + 1
	if list.NextID > nextID {
		nextID = list.NextID
	}
	return tasks, nextID, nil
}

// Add creates a task with the next id and persists the collection.
// If the save fails the insert is rolled back and the id is released.
func (s *Store) Add(description string) (models.Task, error) {
	task := models.NewTask(s.nextID, description, s.now())
	if task.Description == "" {
		return models.Task{}, ErrInvalidDescription
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks[task.ID] = task
	s.nextID++

	if err := s.save("add"); err != nil {
		delete(s.tasks, task.ID)
		s.nextID--
		return models.Task{}, fmt.Errorf("failed to save new task: %w", err)
	}
	return task, nil
}

// List returns every task ordered by ascending id.
func (s *Store) List() []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	models.SortByID(out)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (models.Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

// Complete marks a task as completed. Absent ids return false and nothing is written.
func (s *Store) Complete(id int) (bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return false, nil
	}
	original := task

	task.Completed = true
	s.tasks[id] = task

	if err := s.save("complete"); err != nil {
		s.tasks[id] = original
		return false, fmt.Errorf("failed to save task %d after marking complete: %w", id, err)
	}
	return true, nil
}

// Delete removes a task. Absent ids return false and nothing is written.
// The id counter is left untouched so the id is never reassigned.
func (s *Store) Delete(id int) (bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return false, nil
	}

	delete(s.tasks, id)

	if err := s.save("delete"); err != nil {
		s.tasks[id] = task
		return false, fmt.Errorf("failed to save after deleting task %d: %w", id, err)
	}
	return true, nil
}

// Restore replaces the collection with tasks and persists it.
// Every task must pass model validation; a bad one rejects the whole set.
func (s *Store) Restore(tasks []models.Task) error {
	for _, t := range tasks {
		if err := validateRestored(t); err != nil {
			return corruptionError("restore", s.persistence.Location(), err)
		}
	}
	restored, nextID, err := indexTasks(models.TaskList{Tasks: tasks})
	if err != nil {
		return corruptionError("restore", s.persistence.Location(), err)
	}
	if s.nextID > nextID {
		nextID = s.nextID
	}

	previous, previousNext := s.tasks, s.nextID
	s.tasks, s.nextID = restored, nextID

	if err := s.save("restore"); err != nil {
		s.tasks, s.nextID = previous, previousNext
		return fmt.Errorf("failed to save restored tasks: %w", err)
	}
	return nil
}

func validateRestored(t models.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("task %d: %w", t.ID, ErrInvalidDescription)
	}
	if err := models.ValidateStruct(t); err != nil {
		return fmt.Errorf("task %d: %w", t.ID, err)
	}
	return nil
}

// Location describes the backing location.
func (s *Store) Location() string {
	return s.persistence.Location()
}

// Close releases the persistence backend.
func (s *Store) Close() error {
	return s.persistence.Close()
}

func (s *Store) snapshot() models.TaskList {
	return models.TaskList{
		NextID: s.nextID,
		Tasks:  s.List(),
	}
}

func (s *Store) save(op string) error {
	list := s.snapshot()
	if err := s.persistence.Save(list); err != nil {
		s.logger.Warn("task store save failed", "op", op, "location", s.persistence.Location(), "error", err)
		if errors.Is(err, ErrIOFailure) || errors.Is(err, ErrDataCorruption) {
			return err
		}
		return ioError(op, s.persistence.Location(), err)
	}
	s.logger.Debug("task store saved", "op", op, "location", s.persistence.Location(), "tasks", len(list.Tasks), "next_id", list.NextID)
	return nil
}
