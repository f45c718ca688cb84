package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCrashFile(t *testing.T, dataHome string, entry logger.CrashLog) {
	t.Helper()
	dir := filepath.Join(dataHome, "todo-list-app", logger.CrashLogDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	name := "crash_" + entry.Timestamp.Format("20060102_150405.000000") + ".json"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestCrashes_None(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "crashes")
	require.NoError(t, err)
	assert.Equal(t, "No crash logs found.\n", stdout)
}

func TestCrashes_ListAndLast(t *testing.T) {
	dataHome := isolate(t)
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	writeCrashFile(t, dataHome, logger.CrashLog{
		Timestamp: first, Version: "0.1.0", Command: "todo add", PanicValue: "nil map",
		StackTrace: "goroutine 1 [running]:\nadd", GoVersion: "go1.24", OS: "linux", Arch: "amd64",
	})
	writeCrashFile(t, dataHome, logger.CrashLog{
		Timestamp: first.Add(time.Hour), Version: "0.1.0", Command: "todo list", Args: "--watch",
		PanicValue: "index out of range", StackTrace: "goroutine 1 [running]:\nlist",
		GoVersion: "go1.24", OS: "linux", Arch: "amd64",
	})

	stdout, _, err := executeCommand(t, "crashes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "nil map")
	assert.Contains(t, stdout, "index out of range")
	assert.Less(t, strings.Index(stdout, "nil map"), strings.Index(stdout, "index out of range"))

	stdout, _, err = executeCommand(t, "crashes", "--last")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Command: todo list --watch")
	assert.Contains(t, stdout, "Panic:   index out of range")
	assert.Contains(t, stdout, "goroutine 1 [running]:\nlist")
	assert.NotContains(t, stdout, "nil map")

	stdout, _, err = executeCommand(t, "crashes", "--json")
	require.NoError(t, err)
	var logs []logger.CrashLog
	require.NoError(t, json.Unmarshal([]byte(stdout), &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, "todo add", logs[0].Command)
}
