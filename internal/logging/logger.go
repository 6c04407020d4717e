package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger. JSON on stdout by default; console
// format when LOG_FORMAT=console is set (local development).
func New(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	var out = zerolog.New(os.Stdout)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.Level(lvl).With().Timestamp().Str("app", "homelet").Logger()
}
