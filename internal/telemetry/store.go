package telemetry

import (
	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
)

// TrackStore reports every successful mutation on ts to client. Reads,
// misses and failed writes are not reported. A nil or NoopClient leaves ts
// unwrapped.
func TrackStore(ts store.TaskStore, client Client, src Source) store.TaskStore {
	if client == nil {
		return ts
	}
	if _, ok := client.(*NoopClient); ok {
		return ts
	}
	return &trackedStore{TaskStore: ts, client: client, source: src}
}

type trackedStore struct {
	store.TaskStore
	client Client
	source Source
}

func (t *trackedStore) Add(description string) (models.Task, error) {
	task, err := t.TaskStore.Add(description)
	if err == nil {
		t.track(EventTaskAdded, nil)
	}
	return task, err
}

func (t *trackedStore) Complete(id int) (bool, error) {
	ok, err := t.TaskStore.Complete(id)
	if err == nil && ok {
		t.track(EventTaskCompleted, nil)
	}
	return ok, err
}

func (t *trackedStore) Delete(id int) (bool, error) {
	ok, err := t.TaskStore.Delete(id)
	if err == nil && ok {
		t.track(EventTaskDeleted, nil)
	}
	return ok, err
}

func (t *trackedStore) Restore(tasks []models.Task) error {
	err := t.TaskStore.Restore(tasks)
	if err == nil {
		t.track(EventTasksRestored, Properties{"count": len(tasks)})
	}
	return err
}

func (t *trackedStore) track(event string, extra Properties) {
	props := t.source.properties()
	for k, v := range extra {
		props[k] = v
	}
	t.client.Track(event, props)
}
