package service

import (
	"errors"
	"fmt"
)

var (
	ErrFilesNotSelected        = errors.New("both files must be selected")
	ErrFileNotFound            = errors.New("file not found")
	ErrNotRegularFile          = errors.New("not a regular file")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrInvalidWorkbook         = errors.New("file is not a readable Excel workbook")
	ErrInvalidFileName         = errors.New("invalid file name")
	ErrLetterIndexOutOfRange   = errors.New("letter index out of range")
	ErrLocalStoreNotConfigured = errors.New("local store is not configured")
)

// ValidationError is a problem with user input detected before any request
// is sent.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
