package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// InMemoryDSN is the SQLite data source for a database that lives and dies
// with the process. Task state is never written to disk.
const InMemoryDSN = ":memory:"

// Config holds all configuration options for the task desk application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN          string        `env:"TASKDESK_DB_DSN"`
	QueryTimeout time.Duration `env:"TASKDESK_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"TASKDESK_DB_WRITE_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	PendingIndicator   string        `env:"TASKDESK_DISPLAY_PENDING_INDICATOR"`
	CompletedIndicator string        `env:"TASKDESK_DISPLAY_COMPLETED_INDICATOR"`
	MenuPause          time.Duration `env:"TASKDESK_DISPLAY_MENU_PAUSE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TASKDESK_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TASKDESK_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TASKDESK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:          InMemoryDSN,
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			PendingIndicator:   "[ ]",
			CompletedIndicator: "[x]",
			MenuPause:          1 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dsn := os.Getenv("TASKDESK_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if timeout := os.Getenv("TASKDESK_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TASKDESK_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Display configuration
	if indicator := os.Getenv("TASKDESK_DISPLAY_PENDING_INDICATOR"); indicator != "" {
		c.Display.PendingIndicator = indicator
	}
	if indicator := os.Getenv("TASKDESK_DISPLAY_COMPLETED_INDICATOR"); indicator != "" {
		c.Display.CompletedIndicator = indicator
	}
	if pause := os.Getenv("TASKDESK_DISPLAY_MENU_PAUSE"); pause != "" {
		if d, err := time.ParseDuration(pause); err == nil {
			c.Display.MenuPause = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TASKDESK_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TASKDESK_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Application configuration
	if verbose := os.Getenv("TASKDESK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return &ConfigError{Field: "database.dsn", Message: "database DSN cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.PendingIndicator == "" {
		return &ConfigError{Field: "display.pending_indicator", Message: "pending indicator cannot be empty"}
	}
	if c.Display.CompletedIndicator == "" {
		return &ConfigError{Field: "display.completed_indicator", Message: "completed indicator cannot be empty"}
	}
	if c.Display.MenuPause < 0 {
		return &ConfigError{Field: "display.menu_pause", Message: "menu pause cannot be negative"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Message)
}

// Load creates a configuration from defaults and environment, validated
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
