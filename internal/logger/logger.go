// Package logger builds the slog logger shared by every component.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultLogFile receives log output when Output is "file".
const DefaultLogFile = "code-critic.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// OpenOutput resolves the configured output destination. The returned cleanup
// closes the log file, if one was opened.
func OpenOutput(cfg Config) (io.Writer, func(), error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	case "file":
		file, err := os.OpenFile(DefaultLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return file, func() { _ = file.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported log output: %q", cfg.Output)
	}
}

// ParseLevel converts a level name into a slog.Level, falling back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output writes to stdout.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "text":
		fallthrough
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
