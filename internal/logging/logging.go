// Package logging builds component-tagged zerolog loggers.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with the given component. When APP_ENV is
// "dev" the output is the human-readable console format, otherwise JSON.
func New(component string) zerolog.Logger {
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", component).Logger()
}
