package config

import (
	"fmt"
)

// ObservabilityConfig groups logging configuration.
//
// It is optional at the root (pointer in Config). If omitted, defaults
// are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs. Always forced to
	// ServiceName at load time.
	ServiceName string `koanf:"service_name"`

	// Environment labels logs (production, staging, development, ...).
	Environment string `koanf:"environment"`

	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output: "json" or "console".
	Format string `koanf:"format"`
}

// DefaultObservabilityConfig provides the defaults used when nothing is set.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// applyDefaults fills fields left empty by a partial configuration.
// Level stays empty so GetLogLevel can pick one per environment.
func (c *ObservabilityConfig) applyDefaults() {
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

var (
	validLevels = map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	validFormats = map[string]bool{
		"json":    true,
		"console": true,
	}
)

// Validate applies rules that go beyond struct tags. It returns the first
// failure found.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if level := c.GetLogLevel(); !validLevels[level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", level)
	}

	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Logging.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level. An empty level defaults to
// "debug" in development and "info" anywhere else.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	if c.Environment == "development" {
		return "debug"
	}
	return "info"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
