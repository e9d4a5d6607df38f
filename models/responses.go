package models

// UploadResponse is returned by POST /api/letters/upload on success.
// The server may return an empty object; all fields are informational.
type UploadResponse struct {
	Message       string `json:"message,omitempty"`
	ReportingFile string `json:"reporting_file,omitempty"`
	SedFile       string `json:"sed_file,omitempty"`
}

// ProcessResponse is returned by POST /api/letters/process on success.
type ProcessResponse struct {
	Message        string          `json:"message,omitempty"`
	LettersCount   int             `json:"letters_count"`
	LettersData    []LetterSummary `json:"letters_data"`
	FilesGenerated []string        `json:"files_generated"`
}

// StatusResponse is returned by GET /api/letters/status. It reflects the
// server-side progress and is used to reconcile the client state after a
// restart.
type StatusResponse struct {
	ReportingFileUploaded bool `json:"reporting_file_uploaded"`
	SedFileUploaded       bool `json:"sed_file_uploaded"`
	GeneratedLettersCount int  `json:"generated_letters_count"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
