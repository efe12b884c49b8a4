// Package logger configures the application's logging.
//
// It uses *zerolog* for structured logging. Stack traces attached with
// github.com/pkg/errors are rendered through zerolog's pkgerrors marshaller.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/user-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New builds the application logger writing to stdout.
func New(cfg *config.ObservabilityConfig) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds the application logger on top of w.
//
// Format "console" uses zerolog's human readable writer; anything else
// emits one JSON object per line.
func NewWithWriter(cfg *config.ObservabilityConfig, w io.Writer) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = w
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	return &logger
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
