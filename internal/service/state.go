// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-letters-client/models"
)

// Status texts shown by the indicator.
const (
	StatusReady              = "Готов к работе"
	StatusUploading          = "Загрузка файлов..."
	StatusUploaded           = "Файлы успешно загружены"
	StatusUploadFailed       = "Ошибка загрузки файлов"
	StatusProcessing         = "Обработка данных..."
	StatusProcessFailed      = "Ошибка обработки данных"
	StatusPreparingArchive   = "Подготовка архива..."
	StatusArchiveDownloaded  = "Архив успешно скачан"
	StatusDownloading        = "Скачивание файлов..."
	StatusDownloadFailed     = "Ошибка скачивания"
	StatusReadyForProcessing = "Файлы загружены, готов к обработке"
)

// Event is an input of [Reduce].
type Event interface {
	isEvent()
}

type (
	// ReportingFileChanged replaces the reporting file selection; nil clears it.
	ReportingFileChanged struct{ Selection *models.FileSelection }
	// SedFileChanged replaces the SED file selection; nil clears it.
	SedFileChanged struct{ Selection *models.FileSelection }
	// OperationStarted shows a processing status while a request runs.
	OperationStarted struct{ Message string }
	UploadSucceeded  struct{}
	UploadFailed     struct{ Err error }
	ProcessSucceeded struct {
		Response models.ProcessResponse
		At       time.Time
	}
	ProcessFailed struct{ Err error }
	// StatusReconciled merges the server status. CachedLetters are letters
	// restored from the local store, used only when none are loaded.
	StatusReconciled struct {
		Status        models.StatusResponse
		CachedLetters []models.LetterSummary
	}
	// DownloadSucceeded reports a saved document; Archive marks download-all.
	DownloadSucceeded struct {
		FileName string
		Archive  bool
	}
	DownloadFailed struct{ Err error }
)

func (ReportingFileChanged) isEvent() {}
func (SedFileChanged) isEvent()       {}
func (OperationStarted) isEvent()     {}
func (UploadSucceeded) isEvent()      {}
func (UploadFailed) isEvent()         {}
func (ProcessSucceeded) isEvent()     {}
func (ProcessFailed) isEvent()        {}
func (StatusReconciled) isEvent()     {}
func (DownloadSucceeded) isEvent()    {}
func (DownloadFailed) isEvent()       {}

// NewState returns the state of a fresh session.
func NewState() models.ClientState {
	return models.ClientState{
		Status: models.StatusIndicator{Message: StatusReady, Kind: models.StatusDefault},
	}
}

// Reduce returns the state following ev. It never modifies s; progress
// flags only move forward and failures keep them at the last good value.
func Reduce(s models.ClientState, ev Event) models.ClientState {
	next := s.Clone()

	switch e := ev.(type) {
	case ReportingFileChanged:
		next.ReportingFile = cloneSelection(e.Selection)

	case SedFileChanged:
		next.SedFile = cloneSelection(e.Selection)

	case OperationStarted:
		next.Status = models.StatusIndicator{Message: e.Message, Kind: models.StatusProcessing}

	case UploadSucceeded:
		next.FilesUploaded = true
		next.Status = models.StatusIndicator{Message: StatusUploaded, Kind: models.StatusSuccess}

	case UploadFailed:
		next.Status = models.StatusIndicator{Message: StatusUploadFailed, Kind: models.StatusError}

	case ProcessSucceeded:
		count := e.Response.LettersCount
		if count == 0 {
			count = len(e.Response.LettersData)
		}
		next.DataProcessed = true
		next.Letters = append([]models.LetterSummary(nil), e.Response.LettersData...)
		next.LettersCount = count
		next.FilesGenerated = append([]string(nil), e.Response.FilesGenerated...)
		next.ProcessedAt = e.At
		next.Status = models.StatusIndicator{
			Message: fmt.Sprintf("Обработано %d писем", count),
			Kind:    models.StatusSuccess,
		}

	case ProcessFailed:
		next.Status = models.StatusIndicator{Message: StatusProcessFailed, Kind: models.StatusError}

	case StatusReconciled:
		// the indicator changes only when a flag moves forward, so a fresh
		// result or error stays visible across background refreshes
		if e.Status.ReportingFileUploaded && e.Status.SedFileUploaded && !next.FilesUploaded {
			next.FilesUploaded = true
			next.Status = models.StatusIndicator{Message: StatusReadyForProcessing, Kind: models.StatusSuccess}
		}
		if e.Status.GeneratedLettersCount > 0 {
			if len(next.Letters) == 0 && len(e.CachedLetters) > 0 {
				next.Letters = append([]models.LetterSummary(nil), e.CachedLetters...)
				next.LettersCount = len(next.Letters)
			}
			if !next.DataProcessed {
				next.DataProcessed = true
				// the server counts generated .docx files, not letters
				next.Status = models.StatusIndicator{
					Message: fmt.Sprintf("Найдено %d сгенерированных писем", e.Status.GeneratedLettersCount),
					Kind:    models.StatusSuccess,
				}
			}
		}

	case DownloadSucceeded:
		msg := StatusArchiveDownloaded
		if !e.Archive {
			msg = fmt.Sprintf("Файл %s скачан", e.FileName)
		}
		next.Status = models.StatusIndicator{Message: msg, Kind: models.StatusSuccess}

	case DownloadFailed:
		next.Status = models.StatusIndicator{Message: StatusDownloadFailed, Kind: models.StatusError}
	}

	return next
}

func cloneSelection(sel *models.FileSelection) *models.FileSelection {
	if sel == nil {
		return nil
	}
	c := *sel
	return &c
}
