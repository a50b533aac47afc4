package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"todo-backend/internal/ratelimit"
)

// Rate-limited operation names. These are the keys of the policy table and
// the operation names the orchestrator charges against.
const (
	OperationCreateTask        = "createTask"
	OperationUpdateTask        = "updateTask"
	OperationDeleteTask        = "deleteTask"
	OperationUpdatePreferences = "updatePreferences"
)

// Config holds all configuration options for the todo backend
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	RateLimit   RateLimitConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength       int `env:"TODO_VALIDATION_TITLE_MIN"`
	TitleMaxLength       int `env:"TODO_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `env:"TODO_VALIDATION_DESCRIPTION_MAX"`
}

// RateLimitConfig holds the token-bucket policy for each throttled operation
type RateLimitConfig struct {
	CreateTask        ratelimit.Policy
	UpdateTask        ratelimit.Policy
	DeleteTask        ratelimit.Policy
	UpdatePreferences ratelimit.Policy
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMinLength:       1,
			TitleMaxLength:       200,
			DescriptionMaxLength: 2000,
		},
		RateLimit: RateLimitConfig{
			// Task creation: 20 per minute with burst capacity of 5
			CreateTask: ratelimit.Policy{Rate: 20, Period: time.Minute, Capacity: 5},
			// Task updates: 50 per minute (checking off tasks is frequent)
			UpdateTask: ratelimit.Policy{Rate: 50, Period: time.Minute, Capacity: 10},
			// Task deletion: 30 per minute
			DeleteTask: ratelimit.Policy{Rate: 30, Period: time.Minute, Capacity: 5},
			// Preferences updates: 10 per minute (less frequent)
			UpdatePreferences: ratelimit.Policy{Rate: 10, Period: time.Minute, Capacity: 3},
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// RateLimitPolicies returns the operation->policy table for the rate limiter
func (c *Config) RateLimitPolicies() map[string]ratelimit.Policy {
	return map[string]ratelimit.Policy{
		OperationCreateTask:        c.RateLimit.CreateTask,
		OperationUpdateTask:        c.RateLimit.UpdateTask,
		OperationDeleteTask:        c.RateLimit.DeleteTask,
		OperationUpdatePreferences: c.RateLimit.UpdatePreferences,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TODO_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	// Validate rate limit configuration
	for operation, policy := range c.RateLimitPolicies() {
		if policy.Rate <= 0 {
			return &ConfigError{Field: "rate_limit." + operation, Message: "rate must be positive"}
		}
		if policy.Period <= 0 {
			return &ConfigError{Field: "rate_limit." + operation, Message: "period must be positive"}
		}
		if policy.Capacity < 1 {
			return &ConfigError{Field: "rate_limit." + operation, Message: "capacity must be at least 1"}
		}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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
	return "config error for " + e.Field + ": " + e.Message
}
