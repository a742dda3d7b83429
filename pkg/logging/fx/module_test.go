package loggingfx_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JailtonJunior94/portal/pkg/logging"
	loggingfx "github.com/JailtonJunior94/portal/pkg/logging/fx"
	"github.com/JailtonJunior94/portal/pkg/logging/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type resolved struct {
	fx.In

	Logger logging.Logger
	Named  logging.Logger `name:"Logger"`
}

func TestModuleWithConfig_Local(t *testing.T) {
	var got resolved

	app := fxtest.New(t,
		loggingfx.ModuleWithConfig(logging.DefaultConfig(logging.RunModeLocal)),
		fx.Invoke(func(r resolved) { got = r }),
	)
	app.RequireStart()
	app.RequireStop()

	assert.IsType(t, &logging.ConsoleLogger{}, got.Logger)
	assert.Same(t, got.Logger, got.Named)
}

func TestModuleWithConfig_PackagedClosesFileOnStop(t *testing.T) {
	cfg := logging.DefaultConfig(logging.RunModePackaged)
	cfg.File.Path = filepath.Join(t.TempDir(), "main.log")

	var logger logging.Logger
	app := fxtest.New(t,
		loggingfx.ModuleWithConfig(cfg),
		fx.Populate(&logger),
	)
	app.RequireStart()

	require.IsType(t, &logging.FileLogger{}, logger)
	logger.Info(logging.Name("Application"), "Bootstrap application in production mode")
	app.RequireStop()

	data, err := os.ReadFile(cfg.File.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "[info] [Application] Bootstrap application in production mode"))
}

func TestModule_InvalidConfigFailsStartup(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		loggingfx.ModuleWithConfig(logging.Config{Mode: "kiosk"}),
		fx.Invoke(func(logging.Logger) {}),
	)

	assert.ErrorContains(t, app.Err(), logging.ErrInvalidRunMode.Error())
}

func TestModule_ProvidedConfig(t *testing.T) {
	var logger logging.Logger

	app := fxtest.New(t,
		loggingfx.Module,
		fx.Provide(func() logging.Config { return logging.DefaultConfig(logging.RunModeLocal) }),
		fx.Populate(&logger),
	)
	app.RequireStart()
	app.RequireStop()

	assert.IsType(t, &logging.ConsoleLogger{}, logger)
}

func TestNoOpModule(t *testing.T) {
	var got resolved

	app := fxtest.New(t,
		loggingfx.NoOpModule,
		fx.Invoke(func(r resolved) { got = r }),
	)
	app.RequireStart()
	app.RequireStop()

	assert.IsType(t, &noop.Logger{}, got.Logger)
	assert.IsType(t, &noop.Logger{}, got.Named)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loggingfx.ConfigFromEnv(logging.RunModePackaged)
		require.NoError(t, err)

		assert.Equal(t, logging.RunModePackaged, cfg.Mode)
		assert.Equal(t, logging.DefaultFileConfig(), cfg.File)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portal.log")
		t.Setenv("PORTAL_LOG_FILE", path)
		t.Setenv("PORTAL_LOG_LEVEL", "warn")
		t.Setenv("PORTAL_LOG_MAX_SIZE_MB", "5")
		t.Setenv("PORTAL_LOG_MAX_BACKUPS", "3")
		t.Setenv("PORTAL_LOG_MAX_AGE_DAYS", "7")
		t.Setenv("PORTAL_LOG_COMPRESS", "true")

		cfg, err := loggingfx.ConfigFromEnv(logging.RunModeLocal)
		require.NoError(t, err)

		assert.Equal(t, logging.RunModeLocal, cfg.Mode)
		assert.Equal(t, path, cfg.File.Path)
		assert.Equal(t, logging.LogLevelWarn, cfg.File.Level)
		assert.Equal(t, 5, cfg.File.MaxSizeMB)
		assert.Equal(t, 3, cfg.File.MaxBackups)
		assert.Equal(t, 7, cfg.File.MaxAgeDays)
		assert.True(t, cfg.File.Compress)
	})

	t.Run("level names feed the file facility", func(t *testing.T) {
		for _, level := range []string{"WARN", "warning"} {
			t.Run(level, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "portal.log")
				t.Setenv("PORTAL_LOG_FILE", path)
				t.Setenv("PORTAL_LOG_LEVEL", level)

				cfg, err := loggingfx.ConfigFromEnv(logging.RunModePackaged)
				require.NoError(t, err)
				require.NoError(t, cfg.Validate())

				logger, err := logging.NewFileLogger(cfg.File)
				require.NoError(t, err)
				assert.Equal(t, logging.LogLevelWarn, logger.Level())

				logger.Info(logging.Name("Application"), "dropped")
				logger.Warn(logging.Name("Application"), "kept")
				require.NoError(t, logger.Close())

				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.NotContains(t, string(data), "dropped")
				assert.Contains(t, string(data), "[warn] [Application] kept")
			})
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Setenv("PORTAL_LOG_MAX_SIZE_MB", "big")

		_, err := loggingfx.ConfigFromEnv(logging.RunModePackaged)
		assert.ErrorContains(t, err, "PORTAL_LOG_MAX_SIZE_MB")
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("PORTAL_LOG_COMPRESS", "maybe")

		_, err := loggingfx.ConfigFromEnv(logging.RunModePackaged)
		assert.ErrorContains(t, err, "PORTAL_LOG_COMPRESS")
	})
}
