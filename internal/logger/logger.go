package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup configures global zerolog field names. Call once at startup.
func Setup() {
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "level_name"
}

// New returns a logger scoped to one component. The level is driven by
// VETOCHECK_LOG_LEVEL (debug, info, warn, error); default is info.
func New(component string) zerolog.Logger {
	level := zerolog.InfoLevel
	if raw, ok := os.LookupEnv("VETOCHECK_LOG_LEVEL"); ok {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	return zerolog.New(os.Stderr).
		With().
		Str("component", component).
		Timestamp().
		Logger().
		Level(level)
}
