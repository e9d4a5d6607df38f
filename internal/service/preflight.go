package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-letters-client/models"
	"github.com/xuri/excelize/v2"
)

// ReportingSheetName is the sheet the server reads from the reporting file.
const ReportingSheetName = "Внутригрупповая отчетность"

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

type excelInspector struct{}

// NewFileInspector returns a [FileInspector] accepting Excel workbooks.
// .xlsx files are opened to make sure they are readable; legacy .xls files
// are only checked by extension.
func NewFileInspector() FileInspector {
	return excelInspector{}
}

func (excelInspector) Inspect(kind models.FileKind, path string) (models.FileSelection, error) {
	path = strings.TrimSpace(path)
	field := kind.String()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.FileSelection{}, &ValidationError{Field: field, Err: ErrFileNotFound}
		}
		return models.FileSelection{}, &ValidationError{Field: field, Err: fmt.Errorf("%w: %w", ErrFileNotFound, err)}
	}
	if !info.Mode().IsRegular() {
		return models.FileSelection{}, &ValidationError{Field: field, Err: ErrNotRegularFile}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return models.FileSelection{}, &ValidationError{Field: field, Err: fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)}
	}

	selection := models.FileSelection{
		Kind: kind,
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}

	if ext != ".xlsx" {
		return selection, nil
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return models.FileSelection{}, &ValidationError{Field: field, Err: fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)}
	}
	defer wb.Close()

	if kind == models.ReportingFile {
		if idx, _ := wb.GetSheetIndex(ReportingSheetName); idx < 0 {
			selection.Warning = fmt.Sprintf("Лист %q не найден", ReportingSheetName)
		}
	}

	return selection, nil
}
