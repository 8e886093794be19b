// Package cli provides the keycalc command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
	"github.com/custodia-labs/keycalc/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services holds the core services the commands drive.
type Services struct {
	// Settings manages the config file.
	Settings driving.SettingsService

	// Sessions hosts calculators for the MCP server.
	Sessions driving.SessionService

	// NewCalculator builds a calculator configured from settings.
	NewCalculator func() (driving.Calculator, error)
}

// Bootstrap builds services for a config directory. An empty configDir
// selects the default location.
type Bootstrap func(configDir string) (*Services, error)

var (
	settingsService driving.SettingsService
	sessionService  driving.SessionService
	newCalculator   func() (driving.Calculator, error)

	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "keycalc",
	Short: "A keystroke-driven calculator",
	Long: `keycalc is a calculator driven one key at a time.

Keys are applied in order with immediate evaluation: 2 + 3 * 4 = gives 20.
Use it interactively with the terminal UI, from scripts with eval, or from
AI assistants through the MCP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().String("config-dir", "", "config directory (default ~/.keycalc, or $KEYCALC_CONFIG_DIR)")
}

// SetServices injects the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settingsService = s.Settings
	sessionService = s.Sessions
	newCalculator = s.NewCalculator
}

// SetBootstrap registers the function that builds services once flags are parsed.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(cmd *cobra.Command, _ []string) error {
	if bootstrap != nil {
		dir, err := cmd.Flags().GetString("config-dir")
		if err != nil {
			return fmt.Errorf("getting config-dir flag: %w", err)
		}
		s, err := bootstrap(dir)
		if err != nil {
			return fmt.Errorf("initialising: %w", err)
		}
		SetServices(s)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("getting verbose flag: %w", err)
	}
	if verbose {
		logger.SetVerbose(true)
	}
	return nil
}
