package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-letters-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LettersService drives one upload, process and download session against the
// letters service. Methods returning [models.ClientState] return a snapshot
// taken right after the operation; it is safe to keep and read.
type LettersService interface {
	// State returns a snapshot of the current session state.
	State() models.ClientState

	// SelectReportingFile checks the file at path and records it as the
	// reporting file. An empty path clears the selection. A file that fails
	// the check is reported as *ValidationError and leaves the slot empty.
	SelectReportingFile(path string) (models.ClientState, error)

	// SelectSedFile is SelectReportingFile for the SED file.
	SelectSedFile(path string) (models.ClientState, error)

	// Upload sends both selected files. Without both selections it returns a
	// *ValidationError and sends nothing.
	Upload(ctx context.Context) (models.ClientState, error)

	// Process asks the server to generate the letters and stores the result.
	Process(ctx context.Context) (models.ClientState, error)

	// RefreshStatus reconciles local flags with the server. Errors are
	// returned for logging only; the state is still valid.
	RefreshStatus(ctx context.Context) (models.ClientState, error)

	// DownloadAll saves the archive of all generated documents.
	DownloadAll(ctx context.Context) (models.SavedFile, error)

	// DownloadOne saves a single generated document under its base name.
	DownloadOne(ctx context.Context, filename string) (models.SavedFile, error)

	// DownloadLetterPair saves the letter and the appendix of the letter at
	// zero-based index. Nothing is saved unless both downloads succeed.
	DownloadLetterPair(ctx context.Context, index int) ([]models.SavedFile, error)

	// CachedLetters returns the letters of the last processing run kept in
	// the local store.
	CachedLetters(ctx context.Context) ([]models.LetterSummary, error)

	// History returns the newest saved documents first; limit <= 0 means all.
	History(ctx context.Context, limit int) ([]models.DownloadRecord, error)
}

// FileInspector checks a local input file before it is selected.
type FileInspector interface {
	Inspect(kind models.FileKind, path string) (models.FileSelection, error)
}

// DocumentSaver writes downloaded documents to the download directory.
type DocumentSaver interface {
	Save(doc models.Document) (models.SavedFile, error)
}

// ClientStatusJob periodically refreshes the server status in the background.
type ClientStatusJob interface {
	// Start launches the job; a non-positive interval leaves it stopped.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for it to exit.
	Stop()
}
