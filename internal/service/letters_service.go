package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-letters-client/internal/adapter"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/store"
	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
	"golang.org/x/sync/errgroup"
)

type lettersService struct {
	adapter   adapter.LettersAdapter
	letters   store.LettersRepository
	downloads store.DownloadsRepository
	inspector FileInspector
	saver     DocumentSaver

	traceIDs *utils.UUIDGenerator
	now      func() time.Time
	logger   *logger.Logger

	mu    sync.Mutex
	state models.ClientState
}

// NewLettersService wires a [LettersService]. letters and downloads may be
// nil, in which case caching and history are skipped.
func NewLettersService(
	lettersAdapter adapter.LettersAdapter,
	letters store.LettersRepository,
	downloads store.DownloadsRepository,
	inspector FileInspector,
	saver DocumentSaver,
	logger *logger.Logger,
) LettersService {
	return &lettersService{
		adapter:   lettersAdapter,
		letters:   letters,
		downloads: downloads,
		inspector: inspector,
		saver:     saver,
		traceIDs:  utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
		state:     NewState(),
	}
}

func (s *lettersService) State() models.ClientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *lettersService) apply(ev Event) models.ClientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, ev)
	return s.state.Clone()
}

// traced makes sure ctx carries a trace id and returns a logger bound to it.
func (s *lettersService) traced(ctx context.Context) (context.Context, *logger.Logger) {
	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, s.traceIDs.Generate())
	}
	return ctx, s.logger.WithTrace(ctx)
}

func (s *lettersService) SelectReportingFile(path string) (models.ClientState, error) {
	return s.selectFile(models.ReportingFile, path)
}

func (s *lettersService) SelectSedFile(path string) (models.ClientState, error) {
	return s.selectFile(models.SedFile, path)
}

func (s *lettersService) selectFile(kind models.FileKind, path string) (models.ClientState, error) {
	var (
		selection *models.FileSelection
		checkErr  error
	)

	if strings.TrimSpace(path) != "" {
		sel, err := s.inspector.Inspect(kind, path)
		if err != nil {
			checkErr = err
		} else {
			selection = &sel
		}
	}

	var ev Event = ReportingFileChanged{Selection: selection}
	if kind == models.SedFile {
		ev = SedFileChanged{Selection: selection}
	}

	state := s.apply(ev)
	if checkErr != nil {
		s.logger.Debug().Err(checkErr).Str("kind", kind.String()).Msg("file rejected")
	}
	return state, checkErr
}

func (s *lettersService) Upload(ctx context.Context) (models.ClientState, error) {
	ctx, log := s.traced(ctx)

	current := s.State()
	if !current.CanUpload() {
		return current, &ValidationError{Field: "files", Err: ErrFilesNotSelected}
	}

	s.apply(OperationStarted{Message: StatusUploading})

	_, err := s.adapter.Upload(ctx, models.UploadRequest{
		ReportingFilePath: current.ReportingFile.Path,
		SedFilePath:       current.SedFile.Path,
	})
	if err != nil {
		log.Err(err).Str("func", "lettersService.Upload").Msg("upload failed")
		return s.apply(UploadFailed{Err: err}), err
	}

	log.Info().
		Str("reporting_file", current.ReportingFile.Name).
		Str("sed_file", current.SedFile.Name).
		Msg("files uploaded")
	return s.apply(UploadSucceeded{}), nil
}

func (s *lettersService) Process(ctx context.Context) (models.ClientState, error) {
	ctx, log := s.traced(ctx)

	s.apply(OperationStarted{Message: StatusProcessing})

	resp, err := s.adapter.Process(ctx)
	if err != nil {
		log.Err(err).Str("func", "lettersService.Process").Msg("process failed")
		return s.apply(ProcessFailed{Err: err}), err
	}

	state := s.apply(ProcessSucceeded{Response: resp, At: s.now()})
	log.Info().Int("letters_count", state.LettersCount).Msg("data processed")

	if s.letters != nil {
		if cacheErr := s.letters.ReplaceLetters(ctx, resp.LettersData); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to cache letters locally")
		}
	}

	return state, nil
}

func (s *lettersService) RefreshStatus(ctx context.Context) (models.ClientState, error) {
	ctx, log := s.traced(ctx)

	status, err := s.adapter.Status(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "lettersService.RefreshStatus").Msg("status check failed")
		return s.State(), err
	}

	var cached []models.LetterSummary
	if status.GeneratedLettersCount > 0 && len(s.State().Letters) == 0 && s.letters != nil {
		cached, err = s.letters.GetLetters(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to restore cached letters")
			cached = nil
		}
	}

	log.Debug().
		Bool("reporting_file_uploaded", status.ReportingFileUploaded).
		Bool("sed_file_uploaded", status.SedFileUploaded).
		Int("generated_letters_count", status.GeneratedLettersCount).
		Msg("status refreshed")

	return s.apply(StatusReconciled{Status: status, CachedLetters: cached}), nil
}

func (s *lettersService) DownloadAll(ctx context.Context) (models.SavedFile, error) {
	ctx, log := s.traced(ctx)

	s.apply(OperationStarted{Message: StatusPreparingArchive})

	doc, err := s.adapter.DownloadAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "lettersService.DownloadAll").Msg("archive download failed")
		s.apply(DownloadFailed{Err: err})
		return models.SavedFile{}, err
	}

	saved, err := s.save(ctx, doc)
	if err != nil {
		s.apply(DownloadFailed{Err: err})
		return models.SavedFile{}, err
	}

	s.apply(DownloadSucceeded{FileName: saved.Name, Archive: true})
	return saved, nil
}

func (s *lettersService) DownloadOne(ctx context.Context, filename string) (models.SavedFile, error) {
	ctx, log := s.traced(ctx)

	if _, err := safeFileName(filename); err != nil {
		return models.SavedFile{}, err
	}

	doc, err := s.adapter.Download(ctx, filename)
	if err != nil {
		log.Err(err).Str("func", "lettersService.DownloadOne").Str("file", filename).Msg("download failed")
		s.apply(DownloadFailed{Err: err})
		return models.SavedFile{}, err
	}

	saved, err := s.save(ctx, doc)
	if err != nil {
		s.apply(DownloadFailed{Err: err})
		return models.SavedFile{}, err
	}

	s.apply(DownloadSucceeded{FileName: saved.Name})
	return saved, nil
}

func (s *lettersService) DownloadLetterPair(ctx context.Context, index int) ([]models.SavedFile, error) {
	ctx, log := s.traced(ctx)

	current := s.State()
	if index < 0 || index >= len(current.Letters) {
		return nil, &ValidationError{Field: "index", Err: fmt.Errorf("%w: %d", ErrLetterIndexOutOfRange, index)}
	}

	letter := current.Letters[index]
	names := []string{letter.LetterFileName(index), letter.AppendixFileName(index)}
	docs := make([]models.Document, len(names))

	s.apply(OperationStarted{Message: StatusDownloading})

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := s.adapter.Download(gctx, name)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "lettersService.DownloadLetterPair").Int("index", index).Msg("pair download failed")
		s.apply(DownloadFailed{Err: err})
		return nil, err
	}

	saved := make([]models.SavedFile, 0, len(docs))
	for _, doc := range docs {
		file, err := s.save(ctx, doc)
		if err != nil {
			s.apply(DownloadFailed{Err: err})
			return saved, err
		}
		saved = append(saved, file)
	}

	s.apply(DownloadSucceeded{FileName: saved[0].Name})
	return saved, nil
}

// save writes doc and records it in the download history. History failures
// are logged only.
func (s *lettersService) save(ctx context.Context, doc models.Document) (models.SavedFile, error) {
	log := s.logger.WithTrace(ctx)

	saved, err := s.saver.Save(doc)
	if err != nil {
		log.Err(err).Str("file", doc.FileName).Msg("failed to save document")
		return models.SavedFile{}, err
	}

	if s.downloads != nil {
		_, histErr := s.downloads.SaveDownload(ctx, models.DownloadRecord{
			FileName:     saved.Name,
			Path:         saved.Path,
			Size:         saved.Size,
			DownloadedAt: s.now(),
		})
		if histErr != nil {
			log.Warn().Err(histErr).Str("file", saved.Name).Msg("failed to record download")
		}
	}

	log.Info().Str("file", saved.Name).Int64("size", saved.Size).Msg("document saved")
	return saved, nil
}

func (s *lettersService) CachedLetters(ctx context.Context) ([]models.LetterSummary, error) {
	if s.letters == nil {
		return nil, ErrLocalStoreNotConfigured
	}
	return s.letters.GetLetters(ctx)
}

func (s *lettersService) History(ctx context.Context, limit int) ([]models.DownloadRecord, error) {
	if s.downloads == nil {
		return nil, ErrLocalStoreNotConfigured
	}
	return s.downloads.ListDownloads(ctx, limit)
}
