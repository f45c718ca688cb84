package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetDataDir returns the per-user data directory for todo.
// Resolution order (first match wins):
// 1. XDG_DATA_HOME/todo-list-app (if XDG_DATA_HOME is set)
// 2. ~/.local/share/todo-list-app
// It's a variable to allow overriding in tests.
var GetDataDir = func() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppDirName), nil
}

// GetDataFilePath returns the backing file for the configured backend.
// An explicit "data.file" (flag, config file or TODO_DATA_FILE) wins over
// the default location inside GetDataDir.
func GetDataFilePath() (string, error) {
	if path := viper.GetString("data.file"); path != "" {
		return path, nil
	}
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFileName(viper.GetString("data.backend"), viper.GetString("data.format"))), nil
}
