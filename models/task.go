package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimestampLayout is the layout used for every persisted created_at value.
// Timestamps are always stored in UTC.
const TimestampLayout = time.RFC3339Nano

// Task represents a unit of work.
type Task struct {
	ID          int       `json:"id" yaml:"id" toml:"id" validate:"gt=0"`
	Description string    `json:"description" yaml:"description" toml:"description" validate:"required"`
	Completed   bool      `json:"completed" yaml:"completed" toml:"completed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at" validate:"required"`
}

// TaskList is the persisted snapshot of a store: every live task plus the
// id counter, so deleted ids stay retired across process restarts.
type TaskList struct {
	NextID int    `json:"next_id" yaml:"next_id" toml:"next_id" validate:"gte=0"`
	Tasks  []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
}

// MaxID returns the highest task id in the list, or 0 when it is empty.
func (l TaskList) MaxID() int {
	maxID := 0
	for _, t := range l.Tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

// SortByID sorts tasks in place by ascending id.
func SortByID(tasks []Task) {
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
}

// NewTask builds an open task with a UTC creation timestamp.
func NewTask(id int, description string, now time.Time) Task {
	return Task{
		ID:          id,
		Description: strings.TrimSpace(description),
		Completed:   false,
		CreatedAt:   now.UTC(),
	}
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
