// Package logger configures the application's structured logging.
//
// It uses zerolog: JSON lines in production, a human-friendly console
// writer when asked for. Every entry carries the service name and
// environment so logs can be filtered across deployments.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/auth-validation/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

func init() {
	// Lets .Stack() render stack traces carried by github.com/pkg/errors.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339
}

// New builds the application logger writing to stderr.
func New(cfg *config.ObservabilityConfig) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds the application logger writing to out.
func NewWithWriter(cfg *config.ObservabilityConfig, out io.Writer) *zerolog.Logger {
	if cfg == nil {
		cfg = config.DefaultObservabilityConfig()
	}

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	writer := out
	if cfg.Logging.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	return &logger
}
