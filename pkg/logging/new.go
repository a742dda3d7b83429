package logging

import "fmt"

// New builds the sink for the configured run mode: a ConsoleLogger for local
// runs, a FileLogger for packaged runs.
func New(cfg Config) (Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Mode {
	case RunModeLocal:
		return NewConsoleLogger(), nil
	case RunModePackaged:
		fileLogger, err := NewFileLogger(cfg.File)
		if err != nil {
			return nil, err
		}
		return fileLogger, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRunMode, cfg.Mode)
	}
}
