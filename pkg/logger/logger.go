// Package logger wraps zerolog with the construction used across the
// application: JSON to stdout, a role label per component, and timestamps
// on every entry.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// New builds a *Logger for the given role label (e.g. "server") and installs
// it as the zerolog global so package-level log calls carry the same fields.
func New(role string) *Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	log.Logger = l
	return &Logger{l}
}
