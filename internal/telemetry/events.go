package telemetry

import "time"

const (
	EventCommandExecuted = "command_executed"
	EventCommandError    = "command_error"
	EventServerStarted   = "server_started"

	EventTaskAdded     = "task_added"
	EventTaskCompleted = "task_completed"
	EventTaskDeleted   = "task_deleted"
	EventTasksRestored = "tasks_restored"
)

// Surfaces a task operation can arrive through.
const (
	SurfaceCLI  = "cli"
	SurfaceHTTP = "http"
	SurfaceMCP  = "mcp"
)

// Source says where task events come from and which storage served them.
type Source struct {
	Surface string
	Backend string
	Format  string // file backend only
}

func (s Source) properties() Properties {
	props := Properties{
		"surface": s.Surface,
		"backend": s.Backend,
	}
	if s.Format != "" {
		props["format"] = s.Format
	}
	return props
}

// CommandProperties describes one CLI invocation.
func CommandProperties(command, backend string, duration time.Duration) Properties {
	return Properties{
		"command":     command,
		"backend":     backend,
		"duration_ms": duration.Milliseconds(),
	}
}
