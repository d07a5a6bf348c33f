package config

import (
	"os"
	"runtime"
	"strconv"

	"bross/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Run      RunConfig
	Data     DataConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// RunConfig holds Monte Carlo evaluation settings
type RunConfig struct {
	Iterations int
	Alpha      float64
	Seed       int64
	Workers    int
	Progress   bool
}

// DataConfig holds data source settings
type DataConfig struct {
	File string
}

// DatabaseConfig holds run-ledger settings; the ledger is optional
type DatabaseConfig struct {
	Driver  string
	DSN     string
	Enabled bool
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Run: RunConfig{
			Iterations: getEnvIntOrDefault("BROSS_ITERATIONS", 1000),
			Alpha:      getEnvFloatOrDefault("BROSS_ALPHA", 0.05),
			Seed:       int64(getEnvIntOrDefault("BROSS_SEED", 42)),
			Workers:    getEnvIntOrDefault("BROSS_WORKERS", runtime.NumCPU()),
			Progress:   getEnvBoolOrDefault("BROSS_PROGRESS", false),
		},
		Data: DataConfig{
			File: getEnvOrDefault("BROSS_DATA_FILE", ""),
		},
		Database: DatabaseConfig{
			Driver:  getEnvOrDefault("BROSS_DB_DRIVER", "sqlite3"),
			DSN:     getEnvOrDefault("BROSS_DB_DSN", ""),
			Enabled: getEnvOrDefault("BROSS_DB_DSN", "") != "",
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Run.Iterations < 1 {
		return errors.ConfigInvalid("BROSS_ITERATIONS must be >= 1")
	}
	if config.Run.Alpha <= 0 || config.Run.Alpha >= 1 {
		return errors.ConfigInvalid("BROSS_ALPHA must be in (0,1)")
	}
	if config.Run.Workers < 1 {
		return errors.ConfigInvalid("BROSS_WORKERS must be >= 1")
	}
	if config.Database.Enabled && config.Database.Driver != "sqlite3" && config.Database.Driver != "postgres" {
		return errors.ConfigInvalid("BROSS_DB_DRIVER must be sqlite3 or postgres")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
