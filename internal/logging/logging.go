// Package logging builds the zerolog logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level, output format and destination.
type Config struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Format is "json" (default) or "text" for a human readable console.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
	// Extra receives a copy of every entry, as JSON.
	Extra []io.Writer
}

// Setup creates a zerolog logger according to the provided configuration.
func Setup(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json":
	case "text":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	writers := append([]io.Writer{out}, cfg.Extra...)
	multi := zerolog.MultiLevelWriter(writers...)
	return zerolog.New(multi).With().Timestamp().Logger().Level(level), nil
}
