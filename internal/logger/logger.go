package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger provides component-scoped logging with verbose gating
type Logger struct {
	component    string
	verboseCheck func() bool
	writer       io.Writer
}

// New creates a logger whose Debug and Info output is gated on the
// verbose callback. Warn and Error always write.
func New(component string, verboseCheck func() bool) *Logger {
	return &Logger{
		component:    component,
		verboseCheck: verboseCheck,
		writer:       os.Stderr,
	}
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component:    component,
		verboseCheck: l.verboseCheck,
		writer:       l.writer,
	}
}

func (l *Logger) isVerbose() bool {
	return l.verboseCheck != nil && l.verboseCheck()
}

// Debug logs debug messages (only when verbose)
func (l *Logger) Debug(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.log("DEBUG", msg, args...)
	}
}

// Info logs informational messages (only when verbose)
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.isVerbose() {
		l.log("INFO", msg, args...)
	}
}

// Warn logs warning messages (always shown)
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log("WARN", msg, args...)
}

// Error logs error messages (always shown)
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log("ERROR", msg, args...)
}

// log formats and writes log message
func (l *Logger) log(level, msg string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	component := l.component
	if component == "" {
		component = "main"
	}

	formattedMsg := fmt.Sprintf(msg, args...)
	logLine := fmt.Sprintf("[%s] %s [%s] %s\n", timestamp, level, component, formattedMsg)

	if _, err := fmt.Fprint(l.writer, logLine); err != nil {
		// Log write failed, but we can't do much about it
		// since this is the logger itself
		_ = err
	}
}
