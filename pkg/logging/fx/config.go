package loggingfx

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JailtonJunior94/portal/pkg/logging"
)

// ConfigFromEnv creates the logging config for a run mode from environment variables.
// Environment variables:
//   - PORTAL_LOG_FILE: path of the active log file (default: <user config dir>/portal/logs/main.log)
//   - PORTAL_LOG_LEVEL: minimum level written to the file (default: "debug")
//   - PORTAL_LOG_MAX_SIZE_MB: size that triggers a rotation (default: 1)
//   - PORTAL_LOG_MAX_BACKUPS: rotated files to keep (default: 1)
//   - PORTAL_LOG_MAX_AGE_DAYS: age after which rotated files are removed (default: 0, disabled)
//   - PORTAL_LOG_COMPRESS: gzip rotated files (default: false)
func ConfigFromEnv(mode logging.RunMode) (logging.Config, error) {
	defaults := logging.DefaultFileConfig()

	maxSize, err := getEnvInt("PORTAL_LOG_MAX_SIZE_MB", defaults.MaxSizeMB)
	if err != nil {
		return logging.Config{}, err
	}
	maxBackups, err := getEnvInt("PORTAL_LOG_MAX_BACKUPS", defaults.MaxBackups)
	if err != nil {
		return logging.Config{}, err
	}
	maxAge, err := getEnvInt("PORTAL_LOG_MAX_AGE_DAYS", defaults.MaxAgeDays)
	if err != nil {
		return logging.Config{}, err
	}
	compress, err := getEnvBool("PORTAL_LOG_COMPRESS", defaults.Compress)
	if err != nil {
		return logging.Config{}, err
	}

	return logging.Config{
		Mode: mode,
		File: logging.FileConfig{
			Path:       getEnv("PORTAL_LOG_FILE", defaults.Path),
			Level:      logging.LogLevel(getEnv("PORTAL_LOG_LEVEL", string(defaults.Level))),
			MaxSizeMB:  maxSize,
			MaxBackups: maxBackups,
			MaxAgeDays: maxAge,
			Compress:   compress,
			LocalTime:  defaults.LocalTime,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
