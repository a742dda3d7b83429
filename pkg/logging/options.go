package logging

import (
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

type consoleSettings struct {
	out    zapcore.WriteSyncer
	errOut zapcore.WriteSyncer
}

func defaultConsoleSettings() *consoleSettings {
	return &consoleSettings{
		out:    zapcore.Lock(os.Stdout),
		errOut: zapcore.Lock(os.Stderr),
	}
}

// ConsoleOption configures a ConsoleLogger.
type ConsoleOption func(*consoleSettings)

// WithOutput sets the stream that receives debug and info lines.
func WithOutput(w io.Writer) ConsoleOption {
	return func(s *consoleSettings) {
		if w != nil {
			s.out = zapcore.Lock(zapcore.AddSync(w))
		}
	}
}

// WithErrorOutput sets the stream that receives warn and error lines.
func WithErrorOutput(w io.Writer) ConsoleOption {
	return func(s *consoleSettings) {
		if w != nil {
			s.errOut = zapcore.Lock(zapcore.AddSync(w))
		}
	}
}

type fileSettings struct {
	facilityErrors zapcore.WriteSyncer
	clock          zapcore.Clock
}

func defaultFileSettings() *fileSettings {
	return &fileSettings{
		facilityErrors: zapcore.Lock(os.Stderr),
		clock:          zapcore.DefaultClock,
	}
}

// FileOption configures a FileLogger.
type FileOption func(*fileSettings)

// WithFacilityErrorOutput sets where the file facility reports its own
// failures (an unwritable directory, a failed rotation). Defaults to stderr.
func WithFacilityErrorOutput(w io.Writer) FileOption {
	return func(s *fileSettings) {
		if w != nil {
			s.facilityErrors = zapcore.Lock(zapcore.AddSync(w))
		}
	}
}

// WithClock sets the clock used for the facility's timestamps.
func WithClock(clock zapcore.Clock) FileOption {
	return func(s *fileSettings) {
		if clock != nil {
			s.clock = clock
		}
	}
}
