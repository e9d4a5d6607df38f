package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/adapter"
	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/service"
	"github.com/MKhiriev/go-letters-client/internal/store"
)

// Deps is the wired client stack shared by the terminal UI and the one-shot
// CLI commands.
type Deps struct {
	Services *service.ClientServices
	storages *store.ClientStorages
}

// NewDeps opens the local cache and connects the services to the letters
// service described by cfg. Call Close when done.
func NewDeps(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Deps, error) {
	lettersAdapter, err := adapter.NewHTTPLettersAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create letters adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &Deps{
		Services: service.NewClientServices(storages, lettersAdapter, cfg.Storage, log),
		storages: storages,
	}, nil
}

func (d *Deps) Close() error {
	return d.storages.Close()
}
