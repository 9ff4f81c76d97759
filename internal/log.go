// Package internal carries the ambient utilities shared by the scoring
// service's layers.
package internal

import (
	"log"
	"os"
)

// LogLevel orders logging verbosity from quiet to chatty.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[string]LogLevel{
	"ERROR": LogLevelError,
	"WARN":  LogLevelWarn,
	"INFO":  LogLevelInfo,
	"DEBUG": LogLevelDebug,
}

// Logger is the leveled logger threaded through the scoring service, the
// HTTP surface and main. Run lifecycle events log at Info; per-request and
// per-stage diagnostics at Debug.
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger at a fixed level, writing to stderr.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewDefaultLogger reads the level from LOG_LEVEL, defaulting to Info.
func NewDefaultLogger() *Logger {
	level := LogLevelInfo
	if parsed, ok := levelNames[os.Getenv("LOG_LEVEL")]; ok {
		level = parsed
	}
	return NewLogger(level)
}

func (l *Logger) logf(at LogLevel, tag, format string, args ...interface{}) {
	if l.level >= at {
		l.out.Printf(tag+" "+format, args...)
	}
}

// Error logs failures that need operator attention.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, "[ERROR]", format, args...)
}

// Warn logs degraded-but-continuing conditions, like a run the engine
// rejected.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, "[WARN]", format, args...)
}

// Info logs run lifecycle events.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, "[INFO]", format, args...)
}

// Debug logs per-request and per-stage diagnostics.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "[DEBUG]", format, args...)
}
