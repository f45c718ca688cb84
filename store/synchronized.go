package store

import (
	"sync"

	"github.com/josephgoksu/todo/models"
)

// SyncStore serializes every call on an underlying TaskStore.
type SyncStore struct {
	mu    sync.Mutex
	inner TaskStore
}

var _ TaskStore = (*SyncStore)(nil)

// Synchronized wraps ts so that concurrent callers, such as HTTP handlers
// or MCP sessions, run one operation at a time.
func Synchronized(ts TaskStore) *SyncStore {
	if s, ok := ts.(*SyncStore); ok {
		return s
	}
	return &SyncStore{inner: ts}
}

// Do runs fn with exclusive access to the wrapped store, so several calls
// observe no interleaved writers. fn must use the store it is given; calling
// back into s would deadlock.
func (s *SyncStore) Do(fn func(TaskStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.inner)
}

func (s *SyncStore) Add(description string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Add(description)
}

func (s *SyncStore) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.List()
}

func (s *SyncStore) Get(id int) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(id)
}

func (s *SyncStore) Complete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Complete(id)
}

func (s *SyncStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(id)
}

func (s *SyncStore) Restore(tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Restore(tasks)
}

func (s *SyncStore) Location() string {
	return s.inner.Location()
}

func (s *SyncStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Close()
}

// CompleteAndGet marks id complete and returns the updated task. On a
// SyncStore both steps run under one lock, so a concurrent Delete cannot
// slip in between them.
func CompleteAndGet(ts TaskStore, id int) (models.Task, bool, error) {
	var (
		task  models.Task
		found bool
	)
	step := func(inner TaskStore) error {
		ok, err := inner.Complete(id)
		if err != nil || !ok {
			return err
		}
		task, found = inner.Get(id)
		return nil
	}

	var err error
	if s, ok := ts.(*SyncStore); ok {
		err = s.Do(step)
	} else {
		err = step(ts)
	}
	return task, found, err
}
