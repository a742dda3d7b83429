// Package application bootstraps the portal shell and reacts to its lifecycle.
package application

import (
	"context"

	"github.com/JailtonJunior94/portal/internal/shell"
	"github.com/JailtonJunior94/portal/pkg/lifecycle"
	"github.com/JailtonJunior94/portal/pkg/logging"
	"go.uber.org/fx"
)

// Module wires the application with a headless shell.
// Usage:
//
//	fx.New(
//	    loggingfx.ModuleWithConfig(logCfg),
//	    application.Module(application.NewConfig(serve, baseDir)),
//	).Run()
func Module(cfg Config) fx.Option {
	return ModuleWithShell(cfg, shell.HeadlessFactory)
}

// ModuleWithShell wires the application with a caller-provided shell factory.
func ModuleWithShell(cfg Config, newShell shell.Factory) fx.Option {
	return fx.Module("application",
		fx.Supply(cfg),
		fx.Provide(
			func() shell.Factory { return newShell },
			lifecycle.NewBus,
			ProvideApplication,
		),
		fx.Invoke(RegisterHooks),
	)
}

// ApplicationParams contains dependencies for creating the Application.
type ApplicationParams struct {
	fx.In

	Config     Config
	Logger     logging.Logger `name:"Logger"`
	Bus        lifecycle.Bus
	Shell      shell.Factory
	Shutdowner fx.Shutdowner
}

// ProvideApplication creates the Application from the container.
func ProvideApplication(p ApplicationParams) *Application {
	return New(p.Config, p.Logger, p.Bus, p.Shell, p.Shutdowner)
}

// RegisterHooks bootstraps the application on start and raises the ready
// event; on stop it closes the shell.
func RegisterHooks(lc fx.Lifecycle, app *Application, bus lifecycle.Bus) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := app.Bootstrap(ctx); err != nil {
				return err
			}
			return bus.Emit(ctx, lifecycle.EventReady)
		},
		OnStop: func(ctx context.Context) error {
			return app.Stop(ctx)
		},
	})
}
