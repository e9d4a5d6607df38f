package service

import (
	"github.com/MKhiriev/go-letters-client/internal/adapter"
	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/store"
)

type ClientServices struct {
	LettersService LettersService
	StatusJob      ClientStatusJob
}

// NewClientServices wires the client services. storages may be nil to run
// without the local cache.
func NewClientServices(storages *store.ClientStorages, lettersAdapter adapter.LettersAdapter, cfg config.ClientStorage, logger *logger.Logger) *ClientServices {
	var (
		letters   store.LettersRepository
		downloads store.DownloadsRepository
	)
	if storages != nil {
		letters = storages.LettersRepository
		downloads = storages.DownloadsRepository
	}

	lettersSvc := NewLettersService(
		lettersAdapter,
		letters,
		downloads,
		NewFileInspector(),
		NewDocumentSaver(cfg.DownloadDir),
		logger,
	)

	return &ClientServices{
		LettersService: lettersSvc,
		StatusJob:      NewClientStatusJob(lettersSvc),
	}
}
