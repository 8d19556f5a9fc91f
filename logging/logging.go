package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLogLevel translates a case-insensitive level name to a log level enum
func ParseLogLevel(name string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger writes leveled messages, discarding those below its level
type Logger struct {
	level  int
	source string
	out    *log.Logger
}

// NewLogger creates a Logger which writes messages at or above level to w.
// Every line is tagged with source, which identifies the component or run producing it.
func NewLogger(w io.Writer, level int, source string) *Logger {
	return &Logger{
		level:  level,
		source: source,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// Discard returns a Logger which writes nothing
func Discard() *Logger {
	return NewLogger(io.Discard, FatalLevel+1, "")
}

// With returns a copy of this Logger which tags lines with a different source
func (l *Logger) With(source string) *Logger {
	return &Logger{level: l.level, source: source, out: l.out}
}

// Enabled returns true iff messages at level would be written
func (l *Logger) Enabled(level int) bool {
	return level >= l.level
}

// Logf writes a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("%s: level [%s]: %s", l.source, LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Debugf writes a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(DebugLevel, format, args...)
}

// Infof writes a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(InfoLevel, format, args...)
}

// Warnf writes a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(WarnLevel, format, args...)
}

// Errorf writes a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(ErrorLevel, format, args...)
}
