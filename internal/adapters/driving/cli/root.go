// Package cli provides the hnsearch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options carries root flag values to the bootstrap function.
type Options struct {
	// ConfigDir overrides the configuration directory (~/.hnsearch).
	ConfigDir string

	// NoConfig uses an in-memory configuration instead of the TOML file.
	NoConfig bool
}

// Services holds the core services the commands drive.
type Services struct {
	// Settings reads and writes application settings.
	Settings driving.SettingsService

	// NewController returns a fresh controller for the given search settings.
	NewController func(domain.SearchSettings) driving.FetchController

	// WatchConfig reloads settings on external edits until ctx is done,
	// signalling each reload. Nil when the configuration is not file-backed.
	WatchConfig func(ctx context.Context) (<-chan struct{}, error)

	// Reload applies freshly loaded settings to running services. The
	// search API endpoint and rate follow the file; a controller keeps
	// the page size and default query it was created with.
	Reload func() error
}

// BootstrapFunc builds Services once root flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	verbose   bool
	configDir string
	noConfig  bool

	servicesMu sync.Mutex
	active     *Services
	bootstrap  BootstrapFunc
)

var rootCmd = &cobra.Command{
	Use:   "hnsearch",
	Short: "Search Hacker News from the terminal",
	Long: `hnsearch queries the Hacker News search API and keeps every result page
it fetches in a per-query cache, so switching back to an earlier query is
instant and "load more" appends to what is already there.

Run without arguments to open the interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hnsearch)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use built-in defaults")
}

// SetBootstrap registers the function that builds Services on first use.
func SetBootstrap(fn BootstrapFunc) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	bootstrap = fn
}

// SetServices injects ready-made services, bypassing bootstrap.
func SetServices(s *Services) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	active = s
}

// loadServices returns the configured services, bootstrapping them if needed.
func loadServices() (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	if active != nil {
		return active, nil
	}
	if bootstrap == nil {
		return nil, errors.New("services not configured")
	}

	s, err := bootstrap(Options{ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return nil, fmt.Errorf("initialise services: %w", err)
	}
	active = s
	return active, nil
}

// watchConfig keeps settings in step with the config file for long-running
// commands. The returned func stops watching.
func watchConfig(ctx context.Context, svc *Services) func() {
	if svc.WatchConfig == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	reloads, err := svc.WatchConfig(ctx)
	if err != nil {
		logger.Warn("Config reload disabled: %v", err)
		cancel()
		return func() {}
	}

	go func() {
		for range reloads {
			if svc.Reload != nil {
				if err := svc.Reload(); err != nil {
					logger.Warn("Applying reloaded settings failed: %v", err)
					continue
				}
			}
			logger.Info("Settings reloaded")
		}
	}()
	return cancel
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
