package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
)

// ClientStorages groups the local repositories of the client.
type ClientStorages struct {
	LettersRepository   LettersRepository
	DownloadsRepository DownloadsRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN (creating the file
// if needed), runs pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		LettersRepository:   NewLettersRepository(db, logger),
		DownloadsRepository: NewDownloadsRepository(db, logger),
		db:                  db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
