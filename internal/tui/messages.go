package tui

import (
	"github.com/MKhiriev/go-letters-client/models"
)

type fileSelectedMsg struct {
	kind  models.FileKind
	state models.ClientState
	err   error
}

type uploadDoneMsg struct {
	state models.ClientState
	err   error
}

type processDoneMsg struct {
	state models.ClientState
	err   error
}

// statusRefreshedMsg carries the result of a status check; manual marks a
// check started by the user rather than on start.
type statusRefreshedMsg struct {
	state  models.ClientState
	err    error
	manual bool
}

type downloadDoneMsg struct {
	files []models.SavedFile
	state models.ClientState
	err   error
}

type stateSyncMsg struct {
	state models.ClientState
}

type copiedMsg struct {
	path string
	err  error
}

type clearNoticeMsg struct {
	seq int
}

// panicMsg replaces the result of a command that panicked.
type panicMsg struct {
	value any
}
