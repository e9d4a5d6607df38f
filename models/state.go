package models

import (
	"slices"
	"time"
)

// FileKind tells the two required input files apart.
type FileKind int

const (
	// ReportingFile is the intra-group reporting workbook.
	ReportingFile FileKind = iota
	// SedFile is the document-management (SED) export workbook.
	SedFile
)

// String returns the multipart field name used for the file kind.
func (k FileKind) String() string {
	switch k {
	case ReportingFile:
		return "reporting_file"
	case SedFile:
		return "sed_file"
	default:
		return "unknown"
	}
}

// FileSelection is a local file picked for upload.
type FileSelection struct {
	Kind FileKind
	Path string
	Name string
	Size int64
	// Warning is a non-blocking remark produced by the preflight check.
	Warning string
}

// StatusKind selects the icon of the status indicator.
type StatusKind int

const (
	StatusDefault StatusKind = iota
	StatusSuccess
	StatusError
	StatusProcessing
)

// StatusIndicator is the single line status shown at the top of the UI.
type StatusIndicator struct {
	Message string
	Kind    StatusKind
}

// Stage is the position of a session in the
// Idle -> FilesSelected -> FilesUploaded -> DataProcessed progression.
type Stage int

const (
	StageIdle Stage = iota
	StageFilesSelected
	StageFilesUploaded
	StageDataProcessed
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageFilesSelected:
		return "files_selected"
	case StageFilesUploaded:
		return "files_uploaded"
	case StageDataProcessed:
		return "data_processed"
	default:
		return "unknown"
	}
}

// ClientState is the whole state of one client session.
//
// FilesUploaded is set only after a successful upload (or a status reconcile
// reporting both files on the server). DataProcessed and Letters are set only
// after a successful process call (or a reconcile reporting generated
// documents).
type ClientState struct {
	ReportingFile *FileSelection
	SedFile       *FileSelection

	FilesUploaded bool
	DataProcessed bool

	Letters        []LetterSummary
	LettersCount   int
	FilesGenerated []string
	ProcessedAt    time.Time

	Status StatusIndicator
}

// ReportingFileSelected reports whether a reporting file is selected.
func (s ClientState) ReportingFileSelected() bool {
	return s.ReportingFile != nil
}

// SedFileSelected reports whether a SED file is selected.
func (s ClientState) SedFileSelected() bool {
	return s.SedFile != nil
}

// CanUpload reports whether the upload action is enabled: both files must be
// selected.
func (s ClientState) CanUpload() bool {
	return s.ReportingFileSelected() && s.SedFileSelected()
}

// Stage derives the session stage from the state flags.
func (s ClientState) Stage() Stage {
	switch {
	case s.DataProcessed:
		return StageDataProcessed
	case s.FilesUploaded:
		return StageFilesUploaded
	case s.CanUpload():
		return StageFilesSelected
	default:
		return StageIdle
	}
}

// Clone returns a deep copy so snapshots can leave the owning goroutine.
func (s ClientState) Clone() ClientState {
	out := s
	if s.ReportingFile != nil {
		f := *s.ReportingFile
		out.ReportingFile = &f
	}
	if s.SedFile != nil {
		f := *s.SedFile
		out.SedFile = &f
	}
	out.Letters = slices.Clone(s.Letters)
	out.FilesGenerated = slices.Clone(s.FilesGenerated)
	return out
}
