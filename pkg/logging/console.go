package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConsoleLogger writes debug and info lines to standard output and warn and
// error lines to standard error. Lines carry no timestamp or level.
type ConsoleLogger struct {
	zap *zap.Logger
}

// NewConsoleLogger creates the console sink.
func NewConsoleLogger(opts ...ConsoleOption) *ConsoleLogger {
	settings := defaultConsoleSettings()
	for _, opt := range opts {
		opt(settings)
	}

	encoder := zapcore.NewConsoleEncoder(messageOnlyEncoderConfig())
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, settings.out, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l < zapcore.WarnLevel
		})),
		zapcore.NewCore(encoder.Clone(), settings.errOut, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.WarnLevel
		})),
	)

	return &ConsoleLogger{
		zap: zap.New(core, zap.ErrorOutput(settings.errOut)),
	}
}

// Debug writes a debug line to standard output.
func (l *ConsoleLogger) Debug(issuer Loggable, msg string) {
	l.zap.Debug(Format(issuer, msg))
}

// Info writes an info line to standard output.
func (l *ConsoleLogger) Info(issuer Loggable, msg string) {
	l.zap.Info(Format(issuer, msg))
}

// Warn writes a warning line to standard error.
func (l *ConsoleLogger) Warn(issuer Loggable, msg string) {
	l.zap.Warn(Format(issuer, msg))
}

// Error writes an error line to standard error.
func (l *ConsoleLogger) Error(issuer Loggable, msg string) {
	l.zap.Error(Format(issuer, msg))
}

// Close flushes both streams. Terminals reject fsync, so sync errors are dropped.
func (l *ConsoleLogger) Close() error {
	_ = l.zap.Sync()
	return nil
}

func messageOnlyEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "message",
		LineEnding: zapcore.DefaultLineEnding,
	}
}
