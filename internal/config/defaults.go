// Package config provides centralized configuration constants for todo.
// All default values should be defined here to ensure a single source of truth.
package config

// AppDirName is the per-user data directory name, shared with earlier releases.
const AppDirName = "todo-list-app"

// Data backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"

	DefaultBackend = BackendFile
)

// DefaultServerAddr is the listen address for `todo serve`.
const DefaultServerAddr = "127.0.0.1:8080"

// DefaultTelemetryEndpoint is the PostHog ingestion endpoint.
const DefaultTelemetryEndpoint = "https://us.i.posthog.com"

// DataFileName returns the default data file name for a backend and format.
func DataFileName(backend, format string) string {
	if backend == BackendSQLite {
		return "tasks.db"
	}
	switch format {
	case "yaml", "toml":
		return "tasks." + format
	default:
		return "tasks.json"
	}
}
