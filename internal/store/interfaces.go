package store

import (
	"context"

	"github.com/MKhiriev/go-letters-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LettersRepository caches the letters of the last successful processing run
// so they can be shown again after the client restarts.
type LettersRepository interface {
	// ReplaceLetters atomically replaces the cached letters with letters,
	// keeping their order.
	ReplaceLetters(ctx context.Context, letters []models.LetterSummary) error
	// GetLetters returns the cached letters in their original order.
	GetLetters(ctx context.Context) ([]models.LetterSummary, error)
}

// DownloadsRepository keeps the history of saved documents.
type DownloadsRepository interface {
	SaveDownload(ctx context.Context, record models.DownloadRecord) (models.DownloadRecord, error)
	// ListDownloads returns the newest records first; limit <= 0 means all.
	ListDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error)
}
