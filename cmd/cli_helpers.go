/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/telemetry"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/types"
	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// openStore opens the task store for the configured backend, as used by the
// task commands themselves.
func openStore() (store.TaskStore, error) {
	return openStoreFor(telemetry.SurfaceCLI)
}

// openStoreFor opens the task store and reports its mutations as coming
// from surface.
func openStoreFor(surface string) (store.TaskStore, error) {
	cfg := GetConfig().Data
	ts, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	src := telemetry.Source{Surface: surface, Backend: cfg.Backend}
	if cfg.Backend == config.BackendFile {
		src.Format = cfg.Format
	}
	return telemetry.TrackStore(ts, telemetryClient, src), nil
}

func openBackend(cfg types.DataConfig) (store.TaskStore, error) {
	opts := []store.Option{store.WithLogger(appLogger)}

	switch cfg.Backend {
	case config.BackendSQLite:
		p, err := store.OpenSQLite(cfg.File)
		if err != nil {
			return nil, err
		}
		return openPersistence(p, opts)
	case config.BackendMySQL:
		p, err := store.OpenMySQL(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return openPersistence(p, opts)
	default:
		return store.OpenFile(cfg.File, cfg.Format, opts...)
	}
}

func openPersistence(p store.Persistence, opts []store.Option) (store.TaskStore, error) {
	s, err := store.Open(p, opts...)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return s, nil
}

// parseTaskID parses a positional task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q: must be a positive number", arg)
	}
	return id, nil
}

// resolveTaskID returns the id named in args, or asks the user to pick one of
// the tasks accepted by filter when args is empty and a terminal is attached.
func resolveTaskID(ts store.TaskStore, args []string, title string, filter func(models.Task) bool) (int, error) {
	if len(args) > 0 {
		return parseTaskID(args[0])
	}
	if !ui.IsInteractive() || isJSON() {
		return 0, errors.New("a task ID is required")
	}

	var candidates []models.Task
	for _, t := range ts.List() {
		if filter == nil || filter(t) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return 0, ErrNoTasksFound
	}
	return ui.PromptTaskSelection(title, candidates)
}

// printNotFound reports an absent task the way every command does: on stderr,
// without failing the command.
func printNotFound(w io.Writer, id int) {
	fmt.Fprintf(w, "Error: Task with ID %d not found.\n", id)
}

func telemetryStore() (*telemetry.ConfigStore, error) {
	dir, err := config.GetDataDir()
	if err != nil {
		return nil, fmt.Errorf("get data dir: %w", err)
	}
	return telemetry.NewConfigStore(afero.NewOsFs(), dir), nil
}

func newTelemetryClient() telemetry.Client {
	cfg := GetConfig().Telemetry
	if cfg.APIKey == "" {
		return telemetry.NewNoopClient()
	}
	ts, err := telemetryStore()
	if err != nil {
		LogError("telemetry disabled", err)
		return telemetry.NewNoopClient()
	}
	state, err := ts.Load()
	if err != nil {
		LogError("telemetry disabled", err)
		return telemetry.NewNoopClient()
	}
	return telemetry.New(telemetry.ClientConfig{
		APIKey:   cfg.APIKey,
		Version:  version,
		Config:   state,
		Endpoint: cfg.Endpoint,
	})
}
