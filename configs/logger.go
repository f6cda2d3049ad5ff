package configs

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. LOG_FORMAT=console gives the
// human-readable writer, anything else stays JSON.
func NewLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = l
	}
	zerolog.SetGlobalLevel(level)

	if getEnv("LOG_FORMAT", "console") == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
