package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const fileTimeLayout = "2006-01-02 15:04:05.000"

// FileLogger hands each line to a rotating-file facility. The facility owns
// the path, the rotation policy and the minimum level, and decorates lines
// with its own timestamp and level.
type FileLogger struct {
	zap    *zap.Logger
	writer *lumberjack.Logger
	level  zap.AtomicLevel
}

// NewFileLogger creates the file sink. The file is opened lazily on the first
// write; failures after construction are reported on the facility error output.
func NewFileLogger(cfg FileConfig, opts ...FileOption) (*FileLogger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("file logger: %w", err)
	}

	minLevel, err := ParseLogLevel(string(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("file logger: %w", err)
	}

	settings := defaultFileSettings()
	for _, opt := range opts {
		opt(settings)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}

	level := zap.NewAtomicLevelAt(convertLogLevel(minLevel))
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(fileEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(writer)),
		level,
	)

	return &FileLogger{
		zap:    zap.New(core, zap.ErrorOutput(settings.facilityErrors), zap.WithClock(settings.clock)),
		writer: writer,
		level:  level,
	}, nil
}

// Debug passes a debug line to the facility.
func (l *FileLogger) Debug(issuer Loggable, msg string) {
	l.zap.Debug(Format(issuer, msg))
}

// Info passes an info line to the facility.
func (l *FileLogger) Info(issuer Loggable, msg string) {
	l.zap.Info(Format(issuer, msg))
}

// Warn passes a warning line to the facility.
func (l *FileLogger) Warn(issuer Loggable, msg string) {
	l.zap.Warn(Format(issuer, msg))
}

// Error passes an error line to the facility.
func (l *FileLogger) Error(issuer Loggable, msg string) {
	l.zap.Error(Format(issuer, msg))
}

// Level returns the facility's minimum level.
func (l *FileLogger) Level() LogLevel {
	return fromZapLevel(l.level.Level())
}

// SetLevel changes the facility's minimum level. An unknown level leaves the
// current one in place.
func (l *FileLogger) SetLevel(level LogLevel) error {
	parsed, err := ParseLogLevel(string(level))
	if err != nil {
		return err
	}
	l.level.SetLevel(convertLogLevel(parsed))
	return nil
}

// Rotate closes the active file and starts a new one.
func (l *FileLogger) Rotate() error {
	return l.writer.Rotate()
}

// Close flushes pending lines and closes the file.
func (l *FileLogger) Close() error {
	_ = l.zap.Sync()
	return l.writer.Close()
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(fileTimeLayout),
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	}
}

func bracketLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.String() + "]")
}

// convertLogLevel converts a LogLevel to the facility's zap level.
func convertLogLevel(level LogLevel) zapcore.Level {
	levelMap := map[LogLevel]zapcore.Level{
		LogLevelDebug: zapcore.DebugLevel,
		LogLevelInfo:  zapcore.InfoLevel,
		LogLevelWarn:  zapcore.WarnLevel,
		LogLevelError: zapcore.ErrorLevel,
	}

	if zapLevel, exists := levelMap[level]; exists {
		return zapLevel
	}

	return zapcore.DebugLevel
}

func fromZapLevel(level zapcore.Level) LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return LogLevelDebug
	case level == zapcore.InfoLevel:
		return LogLevelInfo
	case level == zapcore.WarnLevel:
		return LogLevelWarn
	default:
		return LogLevelError
	}
}
