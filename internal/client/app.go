package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/service"
)

var ErrIncompleteApp = errors.New("client app requires services and ui")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.LettersService == nil || ui == nil {
		return nil, ErrIncompleteApp
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run starts the status job, shows the UI and stops the job once the UI
// exits.
func (a *App) Run(ctx context.Context) error {
	if a.services.StatusJob != nil {
		a.services.StatusJob.Start(ctx, a.workers.StatusInterval)
		defer a.services.StatusJob.Stop()
	}

	a.logger.Info().Dur("status_interval", a.workers.StatusInterval).Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
