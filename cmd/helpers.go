package cmd

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/trendview/internal/config"
	"github.com/ziadkadry99/trendview/internal/controller"
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `trendview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// controllerOptions builds the session defaults from cfg.
func controllerOptions(cfg *config.Config) controller.Options {
	return controller.Options{
		Labels:    cfg.Labels,
		Languages: cfg.Languages,
		Initial:   viewstate.Default().WithLanguage(cfg.DefaultLanguage),
	}
}

// loadStore performs the single snapshot load and waits for it.
func loadStore(ctx context.Context, cfg *config.Config) (*loader.Store, error) {
	store := loader.NewStore()
	err := store.Run(ctx, loader.New(cfg.Snapshot))
	return store, err
}
