// Package noop provides a logger that discards every line.
package noop

import "github.com/JailtonJunior94/portal/pkg/logging"

// Logger implements logging.Logger with no-op operations.
type Logger struct{}

// NewLogger creates a new no-op logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(issuer logging.Loggable, msg string) {}

func (l *Logger) Info(issuer logging.Loggable, msg string) {}

func (l *Logger) Warn(issuer logging.Loggable, msg string) {}

func (l *Logger) Error(issuer logging.Loggable, msg string) {}
