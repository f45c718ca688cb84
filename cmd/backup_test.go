package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupAndRestore(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "tasks.json")
	backupFile := filepath.Join(dir, "backup.yaml")

	for _, d := range []string{"first", "second", "third"} {
		_, _, err := executeCommand(t, "add", "--data-file", dataFile, d)
		require.NoError(t, err)
	}
	_, _, err := executeCommand(t, "delete", "--data-file", dataFile, "3")
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "backup", "--data-file", dataFile, backupFile)
	require.NoError(t, err)
	assert.Equal(t, "Backed up 2 task(s) to "+backupFile+"\n", stdout)

	data, err := os.ReadFile(backupFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "description: first")

	_, _, err = executeCommand(t, "delete", "--data-file", dataFile, "1")
	require.NoError(t, err)
	_, _, err = executeCommand(t, "delete", "--data-file", dataFile, "2")
	require.NoError(t, err)

	stdout, _, err = executeCommand(t, "restore", "--data-file", dataFile, backupFile)
	require.NoError(t, err)
	assert.Equal(t, "Restored 2 task(s) from "+backupFile+"\n", stdout)

	tasks := listJSON(t, "--data-file", dataFile)
	require.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, 2, tasks[1].ID)

	// Ids handed out before the restore are still never reused.
	stdout, _, err = executeCommand(t, "add", "--data-file", dataFile, "fourth")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(ID: 4)")
}

func TestRestore_MissingSnapshot(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "tasks.json")

	_, _, err := executeCommand(t, "add", "--data-file", dataFile, "keep me")
	require.NoError(t, err)

	_, _, err = executeCommand(t, "restore", "--data-file", dataFile, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot not found")

	assert.Len(t, listJSON(t, "--data-file", dataFile), 1)
}

func TestBackup_UnsupportedFormat(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, _, err := executeCommand(t, "backup", "--data-file", filepath.Join(dir, "tasks.json"), "--format", "xml", filepath.Join(dir, "out.xml"))
	require.Error(t, err)
}
