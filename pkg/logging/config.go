package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

// RunMode selects the sink once at startup.
type RunMode string

const (
	// RunModeLocal is an interactive development run (--serve). Logs go to the console.
	RunModeLocal RunMode = "local"
	// RunModePackaged is a packaged production run. Logs go to a rotating file.
	RunModePackaged RunMode = "packaged"
)

// RunModeFromFlag maps the serve flag to a run mode.
func RunModeFromFlag(serve bool) RunMode {
	if serve {
		return RunModeLocal
	}
	return RunModePackaged
}

// String returns the human description used in bootstrap messages.
func (m RunMode) String() string {
	switch m {
	case RunModeLocal:
		return "local mode"
	case RunModePackaged:
		return "production mode"
	default:
		return string(m)
	}
}

// Defaults for the file facility, matching electron-log.
const (
	DefaultFileName   = "main.log"
	DefaultMaxSizeMB  = 1
	DefaultMaxBackups = 1
)

// Config holds the sink selection and the file facility settings.
type Config struct {
	Mode RunMode
	File FileConfig
}

// FileConfig configures the rotating-file facility behind FileLogger.
type FileConfig struct {
	// Path of the active log file. Rotated files are kept next to it.
	Path string

	// Level is the minimum severity the facility writes.
	Level LogLevel

	// MaxSizeMB is the size in megabytes that triggers a rotation.
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep (0 keeps all).
	MaxBackups int

	// MaxAgeDays removes rotated files older than this many days (0 disables).
	MaxAgeDays int

	// Compress gzips rotated files.
	Compress bool

	// LocalTime names rotated files with local time instead of UTC.
	LocalTime bool
}

// DefaultConfig returns a configuration for the given mode with the file
// facility pointed at the user's config directory.
func DefaultConfig(mode RunMode) Config {
	return Config{
		Mode: mode,
		File: DefaultFileConfig(),
	}
}

// DefaultFileConfig mirrors the electron-log defaults: debug and above, one
// megabyte per file, one rotated backup.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Path:       defaultLogPath(),
		Level:      LogLevelDebug,
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		LocalTime:  true,
	}
}

func defaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "portal", "logs", DefaultFileName)
}

// Validate checks the configuration for the selected mode.
func (c Config) Validate() error {
	switch c.Mode {
	case RunModeLocal:
		return nil
	case RunModePackaged:
		return c.File.Validate()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRunMode, c.Mode)
	}
}

// Validate checks the file facility settings.
func (c FileConfig) Validate() error {
	if c.Path == "" {
		return ErrFilePathRequired
	}
	if _, err := ParseLogLevel(string(c.Level)); err != nil {
		return err
	}
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("%w: size=%d backups=%d age=%d", ErrInvalidRotation, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	}
	return nil
}
