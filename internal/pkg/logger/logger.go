package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger writes to stderr, stdout is reserved for the reports
var defaultLogger zerolog.Logger

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

var levels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
	FatalLevel: zerolog.FatalLevel,
}

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty switches from JSON lines to zerolog's console writer
	Pretty bool
	// Output defaults to os.Stderr
	Output io.Writer
}

// Configure replaces the package logger and the global zerolog level.
// Unknown levels fall back to info.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level, ok := levels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.Kitchen}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

// Get returns the configured logger
func Get() zerolog.Logger {
	return defaultLogger
}

// Debug logs a debug message
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info logs an informational message
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn logs a warning message
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error logs an error message
func Error() *zerolog.Event { return defaultLogger.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
