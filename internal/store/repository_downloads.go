package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/models"
)

type downloadsRepository struct {
	*DB
	logger *logger.Logger
}

func NewDownloadsRepository(db *DB, logger *logger.Logger) DownloadsRepository {
	return &downloadsRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *downloadsRepository) SaveDownload(ctx context.Context, record models.DownloadRecord) (models.DownloadRecord, error) {
	log := d.logger.WithTrace(ctx)

	if record.DownloadedAt.IsZero() {
		record.DownloadedAt = time.Now()
	}
	record.DownloadedAt = record.DownloadedAt.UTC()

	query, args, err := buildInsertDownloadQuery(record, record.DownloadedAt)
	if err != nil {
		return models.DownloadRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "downloadsRepository.SaveDownload").
			Str("file_name", record.FileName).
			Msg("failed to insert download record")
		return models.DownloadRecord{}, fmt.Errorf("%w: save download (file=%s): %w", ErrExecutingStatement, record.FileName, err)
	}

	if record.ID, err = res.LastInsertId(); err != nil {
		return models.DownloadRecord{}, fmt.Errorf("failed to get download id: %w", err)
	}

	return record, nil
}

func (d *downloadsRepository) ListDownloads(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	log := d.logger.WithTrace(ctx)

	query, args, err := buildSelectDownloadsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "downloadsRepository.ListDownloads").Msg("failed to query downloads")
		return nil, fmt.Errorf("%w: query downloads: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DownloadRecord, 0)
	for rows.Next() {
		var rec models.DownloadRecord
		if scanErr := rows.Scan(&rec.ID, &rec.FileName, &rec.Path, &rec.Size, &rec.DownloadedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "downloadsRepository.ListDownloads").Msg("failed to scan download row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating download rows: %w", rowsErr)
	}

	return records, nil
}
