package config

import (
	"fmt"
)

// ServiceName identifies this service in logs.
const ServiceName = "user-api"

// ObservabilityConfig groups configuration related to runtime visibility.
//
// It is embedded under Config.Observability and is optional at the
// root level; when omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in log lines.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment labels telemetry by environment
	// (production, staging, development, local).
	Environment string `koanf:"environment" validate:"required"`

	// Logging controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Empty means "pick by environment", see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultObservabilityConfig provides the defaults used when
// Config.Observability is not supplied.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "",
			Format: "json",
		},
	}
}

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// When no level is configured, development and local default to "debug"
// and every other environment defaults to "info".
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	switch c.Environment {
	case "development", "local":
		return "debug"
	default:
		return "info"
	}
}
