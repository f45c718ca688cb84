package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/store"
	"github.com/josephgoksu/todo/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, fs afero.Fs) store.TaskStore {
	t.Helper()
	p, err := store.NewFilePersistence(fs, "/data/tasks.json", "")
	require.NoError(t, err)
	ts, err := store.Open(p, store.WithLogger(logger.Discard()))
	require.NoError(t, err)
	return store.Synchronized(ts)
}

func textOf(t *testing.T, content []mcpsdk.Content) string {
	t.Helper()
	require.Len(t, content, 1)
	text, ok := content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	return text.Text
}

func requireMCPError(t *testing.T, err error, code string) *types.MCPError {
	t.Helper()
	var mcpErr *types.MCPError
	require.True(t, errors.As(err, &mcpErr), "expected MCPError, got %v", err)
	assert.Equal(t, code, mcpErr.Code)
	return mcpErr
}

func TestTools_Scenario(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t, afero.NewMemMapFs())
	log := logger.Discard()

	add := addTaskHandler(ts, log)
	res, err := add(ctx, nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{Arguments: types.AddTaskParams{Description: "buy milk"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.StructuredContent.Task.ID)
	assert.Equal(t, "Task 1 added: buy milk", textOf(t, res.Content))

	res, err = add(ctx, nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{Arguments: types.AddTaskParams{Description: "walk dog"}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.StructuredContent.Task.ID)

	complete := completeTaskHandler(ts, log)
	cres, err := complete(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: 1}})
	require.NoError(t, err)
	assert.True(t, cres.StructuredContent.Task.Completed)

	list := listTasksHandler(ts)
	lres, err := list(ctx, nil, &mcpsdk.CallToolParamsFor[types.ListTasksParams]{})
	require.NoError(t, err)
	require.Equal(t, 2, lres.StructuredContent.Count)
	assert.Equal(t, "buy milk", lres.StructuredContent.Tasks[0].Description)
	assert.Contains(t, textOf(t, lres.Content), "  1 [x] buy milk")

	open := false
	lres, err = list(ctx, nil, &mcpsdk.CallToolParamsFor[types.ListTasksParams]{Arguments: types.ListTasksParams{Completed: &open}})
	require.NoError(t, err)
	require.Equal(t, 1, lres.StructuredContent.Count)
	assert.Equal(t, 2, lres.StructuredContent.Tasks[0].ID)

	del := deleteTaskHandler(ts, log)
	dres, err := del(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: 1}})
	require.NoError(t, err)
	assert.True(t, dres.StructuredContent.Deleted)

	_, err = del(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: 1}})
	mcpErr := requireMCPError(t, err, types.ErrCodeNotFound)
	assert.Equal(t, "Task with ID 1 not found", mcpErr.Message)
}

func TestTools_Validation(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t, afero.NewMemMapFs())
	log := logger.Discard()

	_, err := addTaskHandler(ts, log)(ctx, nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{Arguments: types.AddTaskParams{Description: "  "}})
	requireMCPError(t, err, types.ErrCodeValidation)

	_, err = completeTaskHandler(ts, log)(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: 0}})
	requireMCPError(t, err, types.ErrCodeValidation)

	_, err = completeTaskHandler(ts, log)(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: 99}})
	requireMCPError(t, err, types.ErrCodeNotFound)

	lres, err := listTasksHandler(ts)(ctx, nil, &mcpsdk.CallToolParamsFor[types.ListTasksParams]{})
	require.NoError(t, err)
	assert.Equal(t, "No tasks found.", textOf(t, lres.Content))
	assert.NotNil(t, lres.StructuredContent.Tasks)
}

func TestTools_StorageFailure(t *testing.T) {
	ts := newTestStore(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := addTaskHandler(ts, logger.Discard())(context.Background(), nil, &mcpsdk.CallToolParamsFor[types.AddTaskParams]{Arguments: types.AddTaskParams{Description: "x"}})
	requireMCPError(t, err, types.ErrCodeStorage)
	assert.Empty(t, ts.List())
}

func TestNewServer_RegistersTools(t *testing.T) {
	ts := newTestStore(t, afero.NewMemMapFs())
	assert.NotPanics(t, func() {
		server := NewServer(ts, "test", logger.Discard())
		assert.NotNil(t, server)
	})
}

func TestCompleteTask_RacingDelete(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t, afero.NewMemMapFs())
	log := logger.Discard()
	const n = 20
	for i := 0; i < n; i++ {
		_, err := ts.Add("task")
		require.NoError(t, err)
	}

	complete := completeTaskHandler(ts, log)
	remove := deleteTaskHandler(ts, log)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for id := 1; id <= n; id++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			res, err := complete(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: id}})
			if err == nil && (res.StructuredContent.Task.ID != id || !res.StructuredContent.Task.Completed) {
				err = fmt.Errorf("complete %d returned %+v", id, res.StructuredContent.Task)
			}
			var mcpErr *types.MCPError
			if errors.As(err, &mcpErr) && mcpErr.Code == types.ErrCodeNotFound {
				err = nil
			}
			errs <- err
		}(id)
		go func(id int) {
			defer wg.Done()
			_, _ = remove(ctx, nil, &mcpsdk.CallToolParamsFor[types.TaskIDParams]{Arguments: types.TaskIDParams{ID: id}})
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Empty(t, ts.List())
}
