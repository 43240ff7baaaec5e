package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	BookingAPI BookingAPIConfig `yaml:"booking_api"`
	Log        LogConfig        `yaml:"log"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings for the agent-facing facade
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BookingAPIConfig contains settings for the external booking API
type BookingAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DashboardConfig contains dashboard query settings
type DashboardConfig struct {
	PageSize int `yaml:"page_size"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RefreshBookings string `yaml:"refresh_bookings"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("BOOKING_API_URL"); val != "" {
		c.BookingAPI.BaseURL = val
	}
	if val := os.Getenv("BOOKING_API_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.BookingAPI.TimeoutSeconds)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.BookingAPI.BaseURL == "" {
		return fmt.Errorf("booking API base URL is required")
	}
	if c.BookingAPI.TimeoutSeconds <= 0 {
		c.BookingAPI.TimeoutSeconds = 30
	}

	if c.Dashboard.PageSize <= 0 {
		c.Dashboard.PageSize = 10
	}

	// Scheduler defaults
	if c.Scheduler.RefreshBookings == "" {
		c.Scheduler.RefreshBookings = "0 */5 * * * *" // every 5 minutes
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
