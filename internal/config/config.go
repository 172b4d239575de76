package config

import (
	"os"
	"strconv"

	"salarydash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Dashboard DashboardConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset file settings
type DataConfig struct {
	File string
}

// DatabaseConfig holds optional Postgres settings. An empty URL means the
// server runs from the file-loaded dataset only.
type DatabaseConfig struct {
	URL string
}

// DashboardConfig holds presentation defaults
type DashboardConfig struct {
	TopRoles      int
	TablePageSize int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			File: getEnvOrDefault("DATASET_FILE", "data/salaries.csv"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Dashboard: DashboardConfig{
			TopRoles:      getEnvIntOrDefault("DASHBOARD_TOP_ROLES", 10),
			TablePageSize: getEnvIntOrDefault("DASHBOARD_PAGE_SIZE", 50),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" && config.Database.URL == "" {
		return errors.ConfigInvalid("either DATASET_FILE or DATABASE_URL is required")
	}
	if config.Dashboard.TopRoles <= 0 {
		return errors.ConfigInvalid("DASHBOARD_TOP_ROLES must be positive")
	}
	if config.Dashboard.TablePageSize <= 0 {
		return errors.ConfigInvalid("DASHBOARD_PAGE_SIZE must be positive")
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
