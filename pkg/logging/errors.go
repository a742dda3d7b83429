package logging

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLogLevel is returned when a level name is not debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidRunMode is returned when the run mode is neither local nor packaged.
	ErrInvalidRunMode = errors.New("invalid run mode")

	// ErrFilePathRequired is returned when the file sink has no path.
	ErrFilePathRequired = errors.New("log file path is required")

	// ErrInvalidRotation is returned when a rotation limit is negative.
	ErrInvalidRotation = errors.New("invalid log rotation settings")
)

func newInvalidLogLevelError(level string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}
