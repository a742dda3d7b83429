package application

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/JailtonJunior94/portal/internal/shell"
	"github.com/JailtonJunior94/portal/pkg/lifecycle"
	"github.com/JailtonJunior94/portal/pkg/logging"
	"go.uber.org/fx"
)

const (
	tag          = "Application"
	devServerURL = "http://localhost:4200"
)

// Config holds the application settings resolved at startup.
type Config struct {
	// LocalMode is set by --serve.
	LocalMode bool
	// HomePage is the page loaded into the shell.
	HomePage string
	// Platform is the GOOS value used for the quit policy.
	Platform string
}

// NewConfig builds the config for a run, resolving the home page from baseDir.
func NewConfig(localMode bool, baseDir string) Config {
	return Config{
		LocalMode: localMode,
		HomePage:  DefaultHomePage(localMode, baseDir),
		Platform:  runtime.GOOS,
	}
}

// DefaultHomePage returns the dev server in local mode and the bundled
// portal index otherwise.
func DefaultHomePage(localMode bool, baseDir string) string {
	if localMode {
		return devServerURL
	}

	index := filepath.Join(baseDir, "dist", "portal", "index.html")
	if abs, err := filepath.Abs(index); err == nil {
		index = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(index)}).String()
}

// Application reacts to the host lifecycle and owns the main shell.
type Application struct {
	cfg      Config
	logger   logging.Logger
	bus      lifecycle.Bus
	newShell shell.Factory
	quit     fx.Shutdowner

	mu    sync.Mutex
	shell shell.Shell
}

// New creates the application.
func New(cfg Config, logger logging.Logger, bus lifecycle.Bus, newShell shell.Factory, quit fx.Shutdowner) *Application {
	return &Application{
		cfg:      cfg,
		logger:   logger,
		bus:      bus,
		newShell: newShell,
		quit:     quit,
	}
}

// Tag identifies the application in log lines.
func (a *Application) Tag() string {
	return tag
}

func (a *Application) mode() logging.RunMode {
	return logging.RunModeFromFlag(a.cfg.LocalMode)
}

// Bootstrap registers the lifecycle handlers.
func (a *Application) Bootstrap(ctx context.Context) error {
	a.logger.Info(a, "Bootstrap application in "+a.mode().String())

	a.logger.Debug(a, "Registering application events")
	if err := a.registerEvents(); err != nil {
		a.logger.Error(a, "Failed to register application events: "+err.Error())
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

func (a *Application) registerEvents() error {
	handlers := []struct {
		event   lifecycle.Event
		handler lifecycle.Handler
	}{
		{lifecycle.EventReady, a.onReady},
		{lifecycle.EventWindowAllClosed, a.onAllWindowsClosed},
		{lifecycle.EventActivate, a.onActivated},
		{lifecycle.EventShellClosed, a.onShellClosed},
	}

	for _, h := range handlers {
		if err := a.bus.On(h.event, h.handler); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) onReady(ctx context.Context, _ lifecycle.Event) error {
	a.logger.Debug(a, "Application is ready")
	return a.initializeShell()
}

func (a *Application) onActivated(ctx context.Context, _ lifecycle.Event) error {
	a.logger.Debug(a, "Application is activated")
	return a.initializeShell()
}

func (a *Application) initializeShell() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.shell != nil {
		a.logger.Debug(a, "Shell already exist, passing initialization")
		return nil
	}

	a.logger.Debug(a, "Initialize shell")
	s, err := a.newShell()
	if err != nil {
		a.logger.Error(a, "Failed to create shell: "+err.Error())
		return fmt.Errorf("create shell: %w", err)
	}

	a.logger.Debug(a, "Navigating to home page "+a.cfg.HomePage)
	if err := s.Load(a.cfg.HomePage); err != nil {
		a.logger.Error(a, "Failed to load home page: "+err.Error())
		// Not subscribed yet, so closing does not re-enter onShellClosed.
		s.Close()
		return fmt.Errorf("load home page: %w", err)
	}

	s.OnClosed(func() {
		if err := a.bus.Emit(context.Background(), lifecycle.EventShellClosed); err != nil {
			a.logger.Warn(a, "Shell close handling failed: "+err.Error())
		}
	})

	if a.cfg.LocalMode {
		s.OpenDevTools()
	}

	a.shell = s
	return nil
}

func (a *Application) onShellClosed(ctx context.Context, _ lifecycle.Event) error {
	a.logger.Debug(a, "Shell is closed, deallocating...")

	a.mu.Lock()
	a.shell = nil
	a.mu.Unlock()
	return nil
}

func (a *Application) onAllWindowsClosed(ctx context.Context, _ lifecycle.Event) error {
	a.logger.Debug(a, "All window are closed")

	// macOS applications stay active until the user quits explicitly.
	if a.cfg.Platform == "darwin" {
		return nil
	}

	a.logger.Info(a, "Quitting application")
	return a.quit.Shutdown()
}

// HasShell reports whether a shell is currently open.
func (a *Application) HasShell() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shell != nil
}

// Stop closes the open shell, if any.
func (a *Application) Stop(ctx context.Context) error {
	a.mu.Lock()
	s := a.shell
	a.mu.Unlock()

	a.logger.Debug(a, "Stopping application")
	if s != nil {
		s.Close()
	}
	return nil
}
