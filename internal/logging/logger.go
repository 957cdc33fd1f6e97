package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// File enables rotating file output next to stderr when set.
	File *FileConfig
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit terminal writer.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	logger, _ := newLogger(cfg, w)
	return logger
}

// NewWithFile is New that also returns a cleanup closing the log file, if any.
func NewWithFile(cfg Config) (zerolog.Logger, func()) {
	logger, file := newLogger(cfg, os.Stderr)
	if file == nil {
		return logger, func() {}
	}
	return logger, func() { _ = file.Close() }
}

func newLogger(cfg Config, w io.Writer) (zerolog.Logger, io.Closer) {
	var output = w

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = w
	}

	var file io.WriteCloser
	if cfg.File != nil && cfg.File.Dir != "" {
		// Files always get JSON lines.
		file = NewFileWriter(*cfg.File)
		output = zerolog.MultiLevelWriter(output, file)
	}

	logger := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	if file == nil {
		return logger, nil
	}
	return logger, file
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from plain config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// PANESHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// PANESHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("PANESHELL_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("PANESHELL_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
