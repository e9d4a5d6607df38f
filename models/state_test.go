package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientState_CanUpload(t *testing.T) {
	file := &FileSelection{Name: "a.xlsx"}

	assert.False(t, ClientState{}.CanUpload())
	assert.False(t, ClientState{ReportingFile: file}.CanUpload())
	assert.False(t, ClientState{SedFile: file}.CanUpload())
	assert.True(t, ClientState{ReportingFile: file, SedFile: file}.CanUpload())
}

func TestClientState_Stage(t *testing.T) {
	file := &FileSelection{Name: "a.xlsx"}

	assert.Equal(t, StageIdle, ClientState{}.Stage())
	assert.Equal(t, StageFilesSelected, ClientState{ReportingFile: file, SedFile: file}.Stage())
	assert.Equal(t, StageFilesUploaded, ClientState{FilesUploaded: true}.Stage())
	assert.Equal(t, StageDataProcessed, ClientState{FilesUploaded: true, DataProcessed: true}.Stage())
}

func TestClientState_CloneIsDeep(t *testing.T) {
	orig := ClientState{
		ReportingFile: &FileSelection{Name: "r.xlsx"},
		Letters:       []LetterSummary{{ContractorName: "A"}},
	}

	cp := orig.Clone()
	cp.ReportingFile.Name = "changed"
	cp.Letters[0].ContractorName = "B"

	assert.Equal(t, "r.xlsx", orig.ReportingFile.Name)
	assert.Equal(t, "A", orig.Letters[0].ContractorName)
}
