// Command keycalc is a keystroke-driven calculator with a terminal UI,
// a scriptable eval command and an MCP server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/keycalc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keycalc/internal/adapters/driving/cli"
	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
	"github.com/custodia-labs/keycalc/internal/core/services"
	"github.com/custodia-labs/keycalc/internal/logger"
)

// version is set by the build.
var version = "dev"

// stderr receives startup warnings.
var stderr io.Writer = os.Stderr

// configDirEnv overrides the default config directory.
const configDirEnv = "KEYCALC_CONFIG_DIR"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap builds the service graph for configDir.
func bootstrap(configDir string) (*cli.Services, error) {
	dir, err := resolveConfigDir(configDir)
	if err != nil {
		return nil, err
	}

	store, err := file.NewConfigStore(nil, dir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(store)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v; using defaults (run 'keycalc settings reset' to repair %s)\n", err, store.Path())
		defaults := domain.DefaultAppSettings()
		settings = &defaults
	}
	logger.SetVerbose(settings.Log.Verbose)
	logger.Debug("config loaded from %s", store.Path())

	maxInput := settings.Engine.MaxInputLength
	newEngine := func() driving.Calculator {
		return services.NewEngine(services.WithMaxInputLength(maxInput))
	}

	return &cli.Services{
		Settings: settingsService,
		Sessions: services.NewSessionRegistry(newEngine),
		NewCalculator: func() (driving.Calculator, error) {
			return newEngine(), nil
		},
	}, nil
}

// resolveConfigDir applies the flag, then the environment, then the default.
func resolveConfigDir(flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	return file.DefaultConfigDir()
}
