package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/JailtonJunior94/portal/internal/application"
	"github.com/JailtonJunior94/portal/pkg/logging"
	loggingfx "github.com/JailtonJunior94/portal/pkg/logging/fx"
	"go.uber.org/fx"
)

func main() {
	serve := flag.Bool("serve", false, "run in local mode: console logs, dev server home page, dev tools")
	baseDir := flag.String("base-dir", executableDir(), "directory containing dist/portal")
	flag.Parse()

	mode := logging.RunModeFromFlag(*serve)
	logCfg, err := loggingfx.ConfigFromEnv(mode)
	if err != nil {
		log.Fatalf("failed to load logging config: %v", err)
	}

	app := fx.New(
		fx.NopLogger,
		loggingfx.ModuleWithConfig(logCfg),
		application.Module(application.NewConfig(*serve, *baseDir)),
	)
	if err := app.Err(); err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatalf("failed to start application: %v", err)
	}

	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		log.Printf("failed to stop application: %v", err)
		os.Exit(1)
	}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
