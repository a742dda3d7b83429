// Package logging provides the issuer-tagged logger used by the portal shell.
//
// Every line a sink receives has the form "[<issuer>] <message>". The issuer is
// anything implementing Loggable; plain names go through Name:
//
//	logger.Info(logging.Name("Updater"), "Check for updates")
//	logger.Debug(app, "Application is ready") // app.Tag() == "Application"
//
// Two sinks exist: ConsoleLogger for local (interactive) runs and FileLogger for
// packaged runs. New picks one from the run mode.
package logging

import "strings"

// Loggable is implemented by anything that can issue log lines.
type Loggable interface {
	// Tag returns the display name rendered between brackets.
	Tag() string
}

// Name is a plain issuer name.
type Name string

// Tag returns the name itself.
func (n Name) Tag() string {
	return string(n)
}

// LogLevel represents the severity of a log call.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevel converts a level name (case-insensitive) to a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch LogLevel(strings.ToLower(strings.TrimSpace(level))) {
	case LogLevelDebug:
		return LogLevelDebug, nil
	case LogLevelInfo:
		return LogLevelInfo, nil
	case LogLevelWarn, "warning":
		return LogLevelWarn, nil
	case LogLevelError:
		return LogLevelError, nil
	default:
		return "", newInvalidLogLevelError(level)
	}
}

// Logger writes issuer-tagged lines to a sink.
// Calls never fail from the caller's point of view.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(issuer Loggable, msg string)

	// Info logs an info-level message.
	Info(issuer Loggable, msg string)

	// Warn logs a warning-level message.
	Warn(issuer Loggable, msg string)

	// Error logs an error-level message.
	Error(issuer Loggable, msg string)
}
