// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the letters client.
//
// [LettersAdapter] decouples the service layer from HTTP. The package ships
// a resty based implementation ([NewHTTPLettersAdapter]) talking to the
// /api/letters endpoints of the letters service.
//
// Non-2xx responses are returned as *[ServerError], which unwraps to one of
// the sentinel values in errors.go so callers can use [errors.Is]. Transport
// failures are returned as *[NetworkError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-letters-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/letters_adapter_mock.go -package=mock

// LettersAdapter defines communication with the letters service.
type LettersAdapter interface {
	// Upload sends the reporting and SED workbooks as one multipart request.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Process asks the server to generate letters from the uploaded files.
	Process(ctx context.Context) (models.ProcessResponse, error)

	// Status returns the server-side progress of the current session.
	Status(ctx context.Context) (models.StatusResponse, error)

	// DownloadAll fetches the ZIP archive with every generated document.
	DownloadAll(ctx context.Context) (models.Document, error)

	// Download fetches a single generated document by file name.
	Download(ctx context.Context, filename string) (models.Document, error)
}
