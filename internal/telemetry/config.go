// Package telemetry manages opt-in anonymous usage telemetry for todo.
// Nothing is sent unless the user runs `todo telemetry enable` and an API key is configured.
package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// ConfigFileName is the name of the telemetry configuration file.
const ConfigFileName = "telemetry.json"

// Config holds the telemetry state and user preferences.
// Stored next to the task data, separate from the main config.
type Config struct {
	// Enabled indicates whether telemetry is currently enabled.
	Enabled bool `json:"enabled"`

	// ConsentAsked is true once the user chose either way.
	ConsentAsked bool `json:"consent_asked"`

	// AnonymousID is a random UUID generated once, never tied to the user.
	AnonymousID string `json:"anonymous_id"`
}

// ConfigStore reads and writes Config under a directory.
type ConfigStore struct {
	fs  afero.Fs
	dir string
}

// NewConfigStore creates a store for dir on fs.
// Use afero.NewOsFs() for real files, or afero.NewMemMapFs() for testing.
func NewConfigStore(fsys afero.Fs, dir string) *ConfigStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &ConfigStore{fs: fsys, dir: dir}
}

// Path returns the full path to the telemetry config file.
func (s *ConfigStore) Path() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// Load reads the telemetry configuration.
// A missing file yields a disabled Config with a fresh anonymous ID.
func (s *ConfigStore) Load() (*Config, error) {
	cfg := &Config{}

	data, err := afero.ReadFile(s.fs, s.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if cfg.AnonymousID == "" {
		cfg.AnonymousID = uuid.New().String()
	}
	return cfg, nil
}

// Save writes cfg with owner-only permissions.
func (s *ConfigStore) Save(cfg *Config) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.Path(), data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Enable turns on telemetry and records the choice.
func (c *Config) Enable() {
	c.Enabled = true
	c.ConsentAsked = true
}

// Disable turns off telemetry and records the choice.
func (c *Config) Disable() {
	c.Enabled = false
	c.ConsentAsked = true
}

// IsEnabled returns true if telemetry is currently enabled.
func (c *Config) IsEnabled() bool {
	return c != nil && c.Enabled
}
