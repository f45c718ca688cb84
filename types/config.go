/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// Backend selects the persistence: a snapshot file or a SQL database.
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite mysql"`
	// File is the snapshot file, or the database file for the sqlite backend.
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
	// DSN is the go-sql-driver DSN used by the mysql backend.
	DSN string `mapstructure:"dsn" validate:"required_if=Backend mysql"`
}

// ServerConfig holds settings for `todo serve`
type ServerConfig struct {
	Addr           string   `mapstructure:"addr" validate:"required,hostname_port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// TelemetryConfig holds the PostHog project settings
type TelemetryConfig struct {
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}
