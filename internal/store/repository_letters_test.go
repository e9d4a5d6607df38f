package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

// manyLetters repeats the sample letters up to n.
func manyLetters(n int) []models.LetterSummary {
	out := make([]models.LetterSummary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testLetters()[i%2])
	}
	return out
}

func TestLettersRepository_ReplaceLetters(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		count   int
		wantErr error
	}{
		{
			name:  "success",
			count: 2,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM letters").WillReturnResult(sqlmock.NewResult(0, 5))
				mock.ExpectExec("INSERT INTO letters").WillReturnResult(sqlmock.NewResult(2, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:  "empty slice only clears",
			count: 0,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM letters").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "insert fails and rolls back",
			count: 2,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM letters").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO letters").WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:  "long list is inserted in batches",
			count: lettersInsertBatch + 1,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM letters").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO letters").WillReturnResult(sqlmock.NewResult(0, lettersInsertBatch))
				mock.ExpectExec("INSERT INTO letters").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "failing second batch rolls back",
			count: lettersInsertBatch + 1,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM letters").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO letters").WillReturnResult(sqlmock.NewResult(0, lettersInsertBatch))
				mock.ExpectExec("INSERT INTO letters").WillReturnError(errors.New("too many SQL variables"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:  "begin fails",
			count: 1,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewLettersRepository(newDBFromSQL(db), logger.Nop())
			err := repo.ReplaceLetters(context.Background(), manyLetters(tt.count))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLettersRepository_GetLetters(t *testing.T) {
	db, mock := newTestDB(t)

	rows := sqlmock.NewRows(letterColumns).
		AddRow(0, "ООО Ромашка", "Ромашка", "12345", "1500.5", "75.25", 3, "", "", "", "", "Поставка").
		AddRow(1, "АО Лютик", "Лютик", "777", "10", "0", 1, "", "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM letters ORDER BY position ASC").WillReturnRows(rows)

	repo := NewLettersRepository(newDBFromSQL(db), logger.Nop())
	letters, err := repo.GetLetters(context.Background())

	require.NoError(t, err)
	require.Len(t, letters, 2)
	assert.Equal(t, "Ромашка", letters[0].ContractorShortName)
	assert.Equal(t, "12345", letters[0].OrderNumber.String())
	assert.True(t, letters[0].TotalAmount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "Поставка", letters[0].Category)
	assert.Equal(t, "Лютик", letters[1].ContractorShortName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLettersRepository_GetLetters_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery("SELECT (.+) FROM letters").WillReturnRows(sqlmock.NewRows(letterColumns))

	repo := NewLettersRepository(newDBFromSQL(db), logger.Nop())
	letters, err := repo.GetLetters(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, letters)
	assert.Empty(t, letters)
}

func TestLettersRepository_GetLetters_InvalidAmount(t *testing.T) {
	db, mock := newTestDB(t)
	rows := sqlmock.NewRows(letterColumns).
		AddRow(0, "x", "x", "1", "not-a-number", "0", 1, "", "", "", "", "")
	mock.ExpectQuery("SELECT (.+) FROM letters").WillReturnRows(rows)

	repo := NewLettersRepository(newDBFromSQL(db), logger.Nop())
	_, err := repo.GetLetters(context.Background())

	assert.Error(t, err)
}

func TestLettersRepository_GetLetters_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery("SELECT (.+) FROM letters").WillReturnError(errors.New("no such table"))

	repo := NewLettersRepository(newDBFromSQL(db), logger.Nop())
	_, err := repo.GetLetters(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
