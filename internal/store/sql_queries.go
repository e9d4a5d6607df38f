package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-letters-client/models"
)

const (
	lettersTable   = "letters"
	downloadsTable = "downloads"

	deleteAllLetters = `DELETE FROM letters;`

	// 1000 rows * 12 columns stays well below SQLITE_MAX_VARIABLE_NUMBER (32766)
	lettersInsertBatch = 1000
)

var (
	// sqlite uses ? placeholders
	sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	letterColumns = []string{
		"position",
		"contractor_name",
		"contractor_short_name",
		"order_number",
		"total_amount",
		"total_penalty",
		"total_positions",
		"be_name",
		"reg_number",
		"reg_date",
		"planned_date",
		"category",
	}

	downloadColumns = []string{
		"id",
		"file_name",
		"path",
		"size",
		"downloaded_at",
	}
)

// buildInsertLettersQuery builds one multi-row INSERT for a batch of letters.
// firstPosition is the position of letters[0] in the full list.
func buildInsertLettersQuery(letters []models.LetterSummary, firstPosition int) (string, []any, error) {
	builder := sqlBuilder.Insert(lettersTable).Columns(letterColumns...)

	for i, l := range letters {
		builder = builder.Values(
			firstPosition+i,
			l.ContractorName,
			l.ContractorShortName,
			l.OrderNumber.String(),
			l.TotalAmount.String(),
			l.TotalPenalty.String(),
			l.TotalPositions,
			l.BEName,
			l.RegNumber,
			l.RegDate,
			l.PlannedDate,
			l.Category,
		)
	}

	return builder.ToSql()
}

func buildSelectLettersQuery() (string, []any, error) {
	return sqlBuilder.
		Select(letterColumns...).
		From(lettersTable).
		OrderBy("position ASC").
		ToSql()
}

func buildInsertDownloadQuery(record models.DownloadRecord, downloadedAt time.Time) (string, []any, error) {
	return sqlBuilder.
		Insert(downloadsTable).
		Columns("file_name", "path", "size", "downloaded_at").
		Values(record.FileName, record.Path, record.Size, downloadedAt).
		ToSql()
}

func buildSelectDownloadsQuery(limit int) (string, []any, error) {
	builder := sqlBuilder.
		Select(downloadColumns...).
		From(downloadsTable).
		OrderBy("downloaded_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
