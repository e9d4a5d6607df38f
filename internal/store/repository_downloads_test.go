package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadsRepository_SaveDownload(t *testing.T) {
	db, mock := newTestDB(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO downloads").
		WithArgs("all_letters.zip", "downloads/all_letters.zip", int64(2048), at).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewDownloadsRepository(newDBFromSQL(db), logger.Nop())
	rec, err := repo.SaveDownload(context.Background(), models.DownloadRecord{
		FileName:     "all_letters.zip",
		Path:         "downloads/all_letters.zip",
		Size:         2048,
		DownloadedAt: at,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, at, rec.DownloadedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadsRepository_SaveDownload_SetsTime(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("INSERT INTO downloads").
		WithArgs("a.docx", "a.docx", int64(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewDownloadsRepository(newDBFromSQL(db), logger.Nop())
	rec, err := repo.SaveDownload(context.Background(), models.DownloadRecord{FileName: "a.docx", Path: "a.docx", Size: 1})

	require.NoError(t, err)
	assert.False(t, rec.DownloadedAt.IsZero())
}

func TestDownloadsRepository_SaveDownload_Error(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("INSERT INTO downloads").WillReturnError(errors.New("readonly database"))

	repo := NewDownloadsRepository(newDBFromSQL(db), logger.Nop())
	_, err := repo.SaveDownload(context.Background(), models.DownloadRecord{FileName: "a.docx"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "file=a.docx")
}

func TestDownloadsRepository_ListDownloads(t *testing.T) {
	db, mock := newTestDB(t)
	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	rows := sqlmock.NewRows(downloadColumns).
		AddRow(2, "b.docx", "downloads/b.docx", 20, newer).
		AddRow(1, "a.docx", "downloads/a.docx", 10, older)
	mock.ExpectQuery("SELECT (.+) FROM downloads ORDER BY downloaded_at DESC, id DESC LIMIT 5").WillReturnRows(rows)

	repo := NewDownloadsRepository(newDBFromSQL(db), logger.Nop())
	records, err := repo.ListDownloads(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, "b.docx", records[0].FileName)
	assert.Equal(t, newer, records[0].DownloadedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadsRepository_ListDownloads_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery("SELECT (.+) FROM downloads").WillReturnError(errors.New("boom"))

	repo := NewDownloadsRepository(newDBFromSQL(db), logger.Nop())
	_, err := repo.ListDownloads(context.Background(), 0)

	assert.Error(t, err)
}
