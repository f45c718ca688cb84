/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/store"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/viper"
)

const (
	configName = ".todo"
	envPrefix  = "TODO"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Translate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// bindFlags connects the persistent flags to their configuration keys.
// It runs on every InitConfig so a viper.Reset does not lose the bindings.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("data.file", flags.Lookup("data-file"))
	_ = viper.BindPFlag("data.backend", flags.Lookup("backend"))
	_ = viper.BindPFlag("data.format", flags.Lookup("format"))
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() error {
	// A missing .env is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., TODO_DATA_FILE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("data.dsn", "TODO_DATA_DSN", "DATABASE_URL")

	bindFlags()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFileFlag == "":
			LogError("no config file found, using defaults and environment variables", nil)
		case errors.Is(err, os.ErrNotExist), errors.As(err, &notFound):
			return fmt.Errorf("config file not found: %s", cfgFileFlag)
		default:
			return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	viper.SetDefault("data.backend", config.DefaultBackend)
	viper.SetDefault("server.addr", config.DefaultServerAddr)
	viper.SetDefault("server.allowedOrigins", []string{})
	viper.SetDefault("telemetry.apiKey", "")
	viper.SetDefault("telemetry.endpoint", config.DefaultTelemetryEndpoint)

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if GlobalAppConfig.Data.File == "" {
		path, err := config.GetDataFilePath()
		if err != nil {
			return fmt.Errorf("resolve data file: %w", err)
		}
		GlobalAppConfig.Data.File = path
	}
	if GlobalAppConfig.Data.Format == "" {
		GlobalAppConfig.Data.Format = store.FormatFromPath(GlobalAppConfig.Data.File)
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
