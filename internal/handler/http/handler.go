package http

import (
	"github.com/MKhiriev/go-letters-client/internal/logger"
)

type Handler struct {
	backend *Backend

	logger *logger.Logger
}

func NewHandler(backend *Backend, logger *logger.Logger) *Handler {
	logger.Info().Msg("stub http handler created")
	return &Handler{
		backend: backend,
		logger:  logger,
	}
}
