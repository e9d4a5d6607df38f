package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiBasePath = "/api/letters"

	// TraceHeader carries the trace id of the user action.
	TraceHeader = "X-Trace-ID"

	// ArchiveFileName is the name the download-all archive is saved under.
	ArchiveFileName = "all_letters.zip"
)

type httpLettersAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPLettersAdapter constructs an HTTP/REST implementation of
// [LettersAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the client with the request timeout.
// Every request gets an X-Trace-ID header: the trace id stored in the request
// context, or a fresh one.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPLettersAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (LettersAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL + apiBasePath).
		SetLogger(log)

	traceIDs := utils.NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		traceID, ok := utils.GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = traceIDs.Generate()
		}
		r.SetHeader(TraceHeader, traceID)
		return nil
	})

	return &httpLettersAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [LettersAdapter]. It POSTs both workbooks as
// multipart/form-data to POST /api/letters/upload under the fields
// reporting_file and sed_file.
func (h *httpLettersAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	reporting, err := os.Open(req.ReportingFilePath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("open reporting file: %w", err)
	}
	defer reporting.Close()

	sed, err := os.Open(req.SedFilePath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("open sed file: %w", err)
	}
	defer sed.Close()

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(models.ReportingFile.String(), filepath.Base(req.ReportingFilePath), reporting).
		SetFileReader(models.SedFile.String(), filepath.Base(req.SedFilePath), sed).
		Post("/upload")
	if err != nil {
		return models.UploadResponse{}, &NetworkError{Op: "upload", Err: err}
	}
	if err = mapHTTPError(resp, fallbackUpload); err != nil {
		return models.UploadResponse{}, err
	}

	var out models.UploadResponse
	if err = decodeBody(resp, &out); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return out, nil
}

// Process implements [LettersAdapter]. It sends POST /api/letters/process
// without a body and decodes the generated letters.
func (h *httpLettersAdapter) Process(ctx context.Context) (models.ProcessResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/process")
	if err != nil {
		return models.ProcessResponse{}, &NetworkError{Op: "process", Err: err}
	}
	if err = mapHTTPError(resp, fallbackProcess); err != nil {
		return models.ProcessResponse{}, err
	}

	var out models.ProcessResponse
	if err = decodeBody(resp, &out); err != nil {
		return models.ProcessResponse{}, fmt.Errorf("decode process response: %w", err)
	}
	if out.LettersCount == 0 && len(out.LettersData) > 0 {
		out.LettersCount = len(out.LettersData)
	}

	return out, nil
}

// Status implements [LettersAdapter]. It GETs /api/letters/status.
func (h *httpLettersAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/status")
	if err != nil {
		return models.StatusResponse{}, &NetworkError{Op: "status", Err: err}
	}
	if err = mapHTTPError(resp, fallbackStatus); err != nil {
		return models.StatusResponse{}, err
	}

	var out models.StatusResponse
	if err = decodeBody(resp, &out); err != nil {
		return models.StatusResponse{}, fmt.Errorf("decode status response: %w", err)
	}

	return out, nil
}

// DownloadAll implements [LettersAdapter]. It GETs /api/letters/download_all
// and returns the archive as a document named [ArchiveFileName].
func (h *httpLettersAdapter) DownloadAll(ctx context.Context) (models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/download_all")
	if err != nil {
		return models.Document{}, &NetworkError{Op: "download all", Err: err}
	}
	if err = mapHTTPError(resp, fallbackDownloadAll); err != nil {
		return models.Document{}, err
	}

	return models.Document{
		FileName:    ArchiveFileName,
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}, nil
}

// Download implements [LettersAdapter]. filename is path-escaped into
// GET /api/letters/download/{filename}.
func (h *httpLettersAdapter) Download(ctx context.Context, filename string) (models.Document, error) {
	if strings.TrimSpace(filename) == "" {
		return models.Document{}, fmt.Errorf("download: empty file name")
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/download/" + url.PathEscape(filename))
	if err != nil {
		return models.Document{}, &NetworkError{Op: "download", Err: err}
	}
	if err = mapHTTPError(resp, fallbackDownload); err != nil {
		return models.Document{}, err
	}

	return models.Document{
		FileName:    filename,
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}, nil
}

// decodeBody unmarshals a JSON body; an empty body leaves v untouched.
func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
