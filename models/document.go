package models

import "time"

// UploadRequest names the two local files sent to the upload endpoint.
type UploadRequest struct {
	ReportingFilePath string
	SedFilePath       string
}

// Document is a binary file received from the server.
type Document struct {
	// FileName is the name the document is saved under.
	FileName string
	// ContentType is the Content-Type reported by the server, if any.
	ContentType string
	// Content holds the raw document bytes.
	Content []byte
}

// SavedFile describes a document written to the download directory.
type SavedFile struct {
	Name string
	Path string
	Size int64
}

// DownloadRecord is an entry of the local download history.
type DownloadRecord struct {
	ID           int64
	FileName     string
	Path         string
	Size         int64
	DownloadedAt time.Time
}
