// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types, and validates that required values are present so
// the process fails fast on bad configuration.
//
// Keys use the AUTHVALIDATE_ prefix and a double underscore between
// nesting levels:
//
//	AUTHVALIDATE_PRIMARY__ENV=development        -> primary.env
//	AUTHVALIDATE_SERVER__PORT=8080               -> server.port
//	AUTHVALIDATE_SERVER__CORS_ALLOWED_ORIGINS=a,b -> server.cors_allowed_origins
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment, if present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of every environment variable read.
	EnvPrefix = "AUTHVALIDATE_"

	// ServiceName tags logs with this service.
	ServiceName = "auth-validation"

	nestingSeparator = "__"
)

// listKeys are split on commas instead of being read as a single string.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	// BodyLimit caps request bodies, in echo's size notation ("64K", "1M").
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// DefaultServerConfig returns the values used for any server key left unset.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		ReadTimeout:        30,
		WriteTimeout:       30,
		IdleTimeout:        60,
		CORSAllowedOrigins: []string{"*"},
		BodyLimit:          "64K",
	}
}

// LoadConfig loads configuration from environment variables, applies
// defaults and validates the result.
//
// Unlike the process entry point, it never exits: every failure is
// returned so callers and tests decide what to do.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		name := envKey(key)
		if listKeys[name] {
			return name, splitList(value)
		}
		return name, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Defaults first; Unmarshal only overwrites keys that were set.
	mainConfig := &Config{Server: DefaultServerConfig()}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.applyDefaults()

	// Service name and environment always come from here, whatever was set.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps AUTHVALIDATE_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, nestingSeparator, ".")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
