// Package logging provides named loggers built on zerolog that redact
// personally identifiable information before a line is written.
// Each line has the form:
//
//	[HOLBERTON] user_data INFO 2019-11-19 18:24:25,105: name=***;email=***;
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
)

// Level represents logging levels
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel converts a configuration string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn, "warning":
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) toZerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LoggerConfig holds configuration for a single logger
type LoggerConfig struct {
	// Name identifies the logger in every line
	Name string

	// Level is the minimum log level (default: info)
	Level Level

	// Output is the sink for formatted lines (default: os.Stdout)
	Output io.Writer

	// ProductTag is the bracketed prefix (default: constants.ProductTag)
	ProductTag string

	// SensitiveFields are the keys whose values are redacted
	// (default: constants.PIIFields)
	SensitiveFields []string

	// Clock stamps records (default: time.Now)
	Clock func() time.Time
}

// Logger wraps zerolog for redacted text logging
type Logger struct {
	logger    zerolog.Logger
	config    LoggerConfig
	formatter *RedactingFormatter
}

// NewLogger creates a logger with exactly one redacting sink.
func NewLogger(config LoggerConfig) *Logger {
	if config.Level == "" {
		config.Level = LevelInfo
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.ProductTag == "" {
		config.ProductTag = constants.ProductTag
	}
	if config.SensitiveFields == nil {
		config.SensitiveFields = constants.PIIFields
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	formatter := NewRedactingFormatter(config.SensitiveFields, Template(config.ProductTag))
	sink := &redactingWriter{
		out:       config.Output,
		name:      config.Name,
		formatter: formatter,
		clock:     config.Clock,
	}

	return &Logger{
		logger:    zerolog.New(sink).Level(config.Level.toZerolog()),
		config:    config,
		formatter: formatter,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.config.Name
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.config.Level
}

// Formatter returns the formatter attached to the logger's sink
func (l *Logger) Formatter() *RedactingFormatter {
	return l.formatter
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

// ErrorWithErr logs an error with the error object
func (l *Logger) ErrorWithErr(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}
