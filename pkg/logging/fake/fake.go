// Package fake provides a logger that records every call for test assertions.
package fake

import (
	"sync"

	"github.com/JailtonJunior94/portal/pkg/logging"
)

// Entry is one recorded log call.
type Entry struct {
	Level   logging.LogLevel
	Issuer  string
	Message string
	// Line is the formatted line a real sink would have received.
	Line string
}

// Logger captures all log operations.
type Logger struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewLogger creates a new fake logger.
func NewLogger() *Logger {
	return &Logger{
		entries: make([]Entry, 0),
	}
}

// Debug captures a debug entry.
func (l *Logger) Debug(issuer logging.Loggable, msg string) {
	l.record(logging.LogLevelDebug, issuer, msg)
}

// Info captures an info entry.
func (l *Logger) Info(issuer logging.Loggable, msg string) {
	l.record(logging.LogLevelInfo, issuer, msg)
}

// Warn captures a warn entry.
func (l *Logger) Warn(issuer logging.Loggable, msg string) {
	l.record(logging.LogLevelWarn, issuer, msg)
}

// Error captures an error entry.
func (l *Logger) Error(issuer logging.Loggable, msg string) {
	l.record(logging.LogLevelError, issuer, msg)
}

func (l *Logger) record(level logging.LogLevel, issuer logging.Loggable, msg string) {
	entry := Entry{
		Level:   level,
		Issuer:  logging.IssuerName(issuer),
		Message: msg,
		Line:    logging.Format(issuer, msg),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all captured entries.
func (l *Logger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Lines returns the formatted lines in call order.
func (l *Logger) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		lines = append(lines, e.Line)
	}
	return lines
}

// Messages returns the messages logged at the given level.
func (l *Logger) Messages(level logging.LogLevel) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	messages := make([]string, 0)
	for _, e := range l.entries {
		if e.Level == level {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Reset clears all captured entries.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]Entry, 0)
}
