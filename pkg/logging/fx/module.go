package loggingfx

import (
	"context"
	"io"

	"github.com/JailtonJunior94/portal/pkg/logging"
	"github.com/JailtonJunior94/portal/pkg/logging/noop"
	"go.uber.org/fx"
)

// RoleName is the name the selected logger is registered under.
// Consumers may resolve it with `name:"Logger"`.
const RoleName = "Logger"

// Module provides the logger selected from the run mode.
// Usage:
//
//	fx.New(
//	    loggingfx.Module,
//	    fx.Provide(func() logging.Config { return config }),
//	)
var Module = fx.Module("logging",
	fx.Provide(
		ProvideLogger,
	),
)

// ModuleWithConfig provides the logger with inline config.
// Usage:
//
//	fx.New(
//	    loggingfx.ModuleWithConfig(logging.DefaultConfig(logging.RunModeLocal)),
//	)
func ModuleWithConfig(cfg logging.Config) fx.Option {
	return fx.Module("logging",
		fx.Supply(cfg),
		fx.Provide(ProvideLogger),
	)
}

// NoOpModule provides a no-op logger for testing.
var NoOpModule = fx.Module("logging-noop",
	fx.Provide(ProvideNoOpLogger),
)

// LoggerParams contains dependencies for creating the Logger.
type LoggerParams struct {
	fx.In

	Config logging.Config
	LC     fx.Lifecycle
}

// LoggerResult registers the same logger by type and by role name.
type LoggerResult struct {
	fx.Out

	Logger logging.Logger
	Named  logging.Logger `name:"Logger"`
}

// ProvideLogger builds the sink once for the container's lifetime and closes
// it when the container stops.
func ProvideLogger(p LoggerParams) (LoggerResult, error) {
	logger, err := logging.New(p.Config)
	if err != nil {
		return LoggerResult{}, err
	}

	if closer, ok := logger.(io.Closer); ok {
		p.LC.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	return LoggerResult{
		Logger: logger,
		Named:  logger,
	}, nil
}

// ProvideNoOpLogger creates a no-op logger instance for testing.
func ProvideNoOpLogger() LoggerResult {
	logger := noop.NewLogger()
	return LoggerResult{
		Logger: logger,
		Named:  logger,
	}
}
