package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/client"
	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/spf13/cobra"
)

const clientRole = "letters-client"

// loadConfig merges defaults, env, flags and the JSON file and builds the
// file logger.
func loadConfig() (*config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(flagCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	return cfg, log, nil
}

// withDeps wires the client stack for one command and releases it afterwards.
func withDeps(cmd *cobra.Command, fn func(ctx context.Context, deps *client.Deps) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	deps, err := client.NewDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := deps.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close local storage")
		}
	}()

	return fn(ctx, deps)
}
