// Command hnsearch searches Hacker News from the terminal.
package main

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hnsearch/internal/adapters/driven/algolia"
	"github.com/custodia-labs/hnsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hnsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hnsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/core/services"
)

func main() {
	cli.SetBootstrap(bootstrap)
	cli.Execute()
}

// bootstrap wires the config store, the search API client and the
// controller factory.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		store driven.ConfigStore
		watch func(context.Context) (<-chan struct{}, error)
	)
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		store = fileStore
		watch = fileStore.Watch
	}

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	client := algolia.NewClient(algolia.ConfigFromSettings(settings.API))

	return &cli.Services{
		Settings: settingsSvc,
		NewController: func(s domain.SearchSettings) driving.FetchController {
			return services.NewFetchController(client, s)
		},
		WatchConfig: watch,
		Reload: func() error {
			settings, err := settingsSvc.Get()
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			client.Configure(algolia.ConfigFromSettings(settings.API))
			return nil
		},
	}, nil
}
