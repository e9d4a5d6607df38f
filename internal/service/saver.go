package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-letters-client/models"
)

type fileSaver struct {
	dir string
}

// NewDocumentSaver returns a [DocumentSaver] writing into dir. The directory
// is created on first save.
func NewDocumentSaver(dir string) DocumentSaver {
	return &fileSaver{dir: dir}
}

// Save writes doc under the base name of doc.FileName. The content goes to a
// temporary file first and is renamed into place, so a failed save never
// leaves a truncated document behind.
func (s *fileSaver) Save(doc models.Document) (models.SavedFile, error) {
	name, err := safeFileName(doc.FileName)
	if err != nil {
		return models.SavedFile{}, err
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return models.SavedFile{}, fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.part")
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(doc.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return models.SavedFile{}, fmt.Errorf("write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return models.SavedFile{}, fmt.Errorf("close %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	if err = os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return models.SavedFile{}, fmt.Errorf("save %s: %w", name, err)
	}

	return models.SavedFile{Name: name, Path: target, Size: int64(len(doc.Content))}, nil
}

// safeFileName strips any directory part, including Windows separators.
func safeFileName(raw string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(raw), `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return "", &ValidationError{Field: "filename", Err: ErrInvalidFileName}
	}
	return name, nil
}
