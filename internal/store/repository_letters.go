package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/shopspring/decimal"
)

type lettersRepository struct {
	*DB
	logger *logger.Logger
}

func NewLettersRepository(db *DB, logger *logger.Logger) LettersRepository {
	return &lettersRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *lettersRepository) ReplaceLetters(ctx context.Context, letters []models.LetterSummary) error {
	log := l.logger.WithTrace(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "lettersRepository.ReplaceLetters").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "lettersRepository.ReplaceLetters").Msg("failed to rollback transaction")
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllLetters); err != nil {
		log.Err(err).Str("func", "lettersRepository.ReplaceLetters").Msg("failed to delete cached letters")
		return fmt.Errorf("%w: delete cached letters: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(letters); start += lettersInsertBatch {
		batch := letters[start:min(start+lettersInsertBatch, len(letters))]

		query, args, buildErr := buildInsertLettersQuery(batch, start)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "lettersRepository.ReplaceLetters").
				Int("count", len(letters)).
				Int("batch_start", start).
				Msg("failed to insert letters")
			return fmt.Errorf("%w: insert letters: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "lettersRepository.ReplaceLetters").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Int("count", len(letters)).Msg("letters cached")
	return nil
}

func (l *lettersRepository) GetLetters(ctx context.Context) ([]models.LetterSummary, error) {
	log := l.logger.WithTrace(ctx)

	query, args, err := buildSelectLettersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "lettersRepository.GetLetters").Msg("failed to query cached letters")
		return nil, fmt.Errorf("%w: failed to query cached letters: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	letters := make([]models.LetterSummary, 0)
	for rows.Next() {
		var (
			item                 models.LetterSummary
			position             int
			orderNumber          string
			totalAmount, penalty string
		)

		scanErr := rows.Scan(
			&position,
			&item.ContractorName,
			&item.ContractorShortName,
			&orderNumber,
			&totalAmount,
			&penalty,
			&item.TotalPositions,
			&item.BEName,
			&item.RegNumber,
			&item.RegDate,
			&item.PlannedDate,
			&item.Category,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "lettersRepository.GetLetters").Msg("failed to scan letter row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.OrderNumber = models.FlexString(orderNumber)
		if item.TotalAmount, err = decimal.NewFromString(totalAmount); err != nil {
			return nil, fmt.Errorf("invalid total_amount at position %d: %w", position, err)
		}
		if item.TotalPenalty, err = decimal.NewFromString(penalty); err != nil {
			return nil, fmt.Errorf("invalid total_penalty at position %d: %w", position, err)
		}

		letters = append(letters, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "lettersRepository.GetLetters").Msg("error iterating letter rows")
		return nil, fmt.Errorf("error iterating letter rows: %w", rowsErr)
	}

	return letters, nil
}
