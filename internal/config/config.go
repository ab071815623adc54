package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Settings file (newline-delimited KEY=VALUE)
	SettingsPath string

	// Transaction database
	SQLiteDBPath string

	// Network status simulation
	NetSimEnabled  bool
	NetSimInterval time.Duration

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		SettingsPath:   getEnv("FINQUEST_SETTINGS_FILE", "finquest_settings.txt"),
		SQLiteDBPath:   getEnv("FINQUEST_DB_PATH", "./data/finquest.db"),
		NetSimEnabled:  getEnvBool("FINQUEST_NETSIM", true),
		NetSimInterval: getEnvDuration("FINQUEST_NETSIM_INTERVAL", 10*time.Second),
		LogLevel:       parseLevel(getEnv("FINQUEST_LOG_LEVEL", "info")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.SettingsPath == "" {
		errs = append(errs, "settings file path cannot be empty")
	}

	if c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.NetSimInterval < time.Second {
		errs = append(errs, fmt.Sprintf("invalid netsim interval %v: must be at least 1 second", c.NetSimInterval))
	} else if c.NetSimInterval > time.Hour {
		errs = append(errs, fmt.Sprintf("invalid netsim interval %v: must be at most 1 hour", c.NetSimInterval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
