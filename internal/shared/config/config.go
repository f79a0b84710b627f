package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv   string `validate:"oneof=dev test prod"`
	LogLevel string `validate:"oneof=trace debug info warn error"`

	// DatabasePath is opened before the first scripted request when set.
	DatabasePath string

	// Debug turns on the event bus diagnostic mode.
	Debug bool
}

// DevMode reports whether logs should be human-readable.
func (c *Config) DevMode() bool {
	return c.AppEnv == "dev"
}

// Load loads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	// 1. Load .env file into the process environment
	if err := godotenv.Load(); err != nil {
		// A missing .env is fine; relying on OS-set env vars.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// 2. Bind viper keys to env var names
	v := viper.New()
	bindings := map[string]string{
		"app.env":       "APP_ENV",
		"log.level":     "LOG_LEVEL",
		"database.path": "CATALOG_DATABASE_PATH",
		"bus.debug":     "CATALOG_DEBUG",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("bus.debug", false)

	cfg := Config{
		AppEnv:       v.GetString("app.env"),
		LogLevel:     v.GetString("log.level"),
		DatabasePath: v.GetString("database.path"),
		Debug:        v.GetBool("bus.debug"),
	}

	// 4. Validation
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
