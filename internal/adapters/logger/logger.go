// Package logger implements a logging adapter using zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.trai.ch/appindicator/internal/core/ports"
)

// DefaultLevel keeps the console quiet so that only installer messages are shown.
const DefaultLevel = zerolog.WarnLevel

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using zerolog.
type Logger struct {
	logger zerolog.Logger
}

// New creates a Logger writing human-readable lines to stderr at the given level.
func New(level string) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a Logger writing to w. Colors are only used when w is a terminal.
func NewWithWriter(w io.Writer, level string) *Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}
	return &Logger{
		logger: zerolog.New(console).Level(ParseLevel(level)).With().Timestamp().Logger(),
	}
}

// ParseLevel converts a level name to a zerolog level, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return DefaultLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return DefaultLevel
	}
	return parsed
}

// Debug logs a debug message with key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	l.logger.Debug().Fields(kv).Msg(msg)
}

// Info logs an informational message with key/value pairs.
func (l *Logger) Info(msg string, kv ...any) {
	l.logger.Info().Fields(kv).Msg(msg)
}

// Warn logs a warning message with key/value pairs.
func (l *Logger) Warn(msg string, kv ...any) {
	l.logger.Warn().Fields(kv).Msg(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error().Err(err).Msg("operation failed")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
