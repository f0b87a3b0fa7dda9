// Package logging wires zerolog loggers and carries them through context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls optional log file output.
type FileConfig struct {
	Enabled    bool
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
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

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

// NewFromConfigValues builds a stderr logger from raw level and format strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == FormatJSON {
		cfg.Format = FormatJSON
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// FAVICACHE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// FAVICACHE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("FAVICACHE_LOG_LEVEL"), os.Getenv("FAVICACHE_LOG_FORMAT"))
}

// NewWithFile creates a logger writing to stderr and, when enabled, to a
// rotating log file. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled || fileCfg.LogDir == "" {
		return New(cfg), func() {}, nil
	}

	logFile, err := OpenRotatingFile(fileCfg)
	if err != nil {
		return New(cfg), func() {}, err
	}

	stderr := consoleOrRaw(cfg, os.Stderr)
	// The file always gets JSON so it stays greppable by tools.
	logger := zerolog.New(zerolog.MultiLevelWriter(stderr, logFile)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if cerr := logFile.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", cerr)
		}
	}
	return logger, cleanup, nil
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(consoleOrRaw(cfg, out)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func consoleOrRaw(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == FormatJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}
