package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-letters-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noticeTimeout     = 5 * time.Second
	stateSyncInterval = 2 * time.Second
)

// safeCmd runs fn and turns a panic into panicMsg so a failing command never
// takes the whole program down.
func safeCmd(fn func() tea.Msg) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = panicMsg{value: r}
			}
		}()
		return fn()
	}
}

func (m appModel) cmdSelectFile(kind models.FileKind, path string) tea.Cmd {
	svc := m.svc
	return safeCmd(func() tea.Msg {
		var (
			state models.ClientState
			err   error
		)
		if kind == models.SedFile {
			state, err = svc.SelectSedFile(path)
		} else {
			state, err = svc.SelectReportingFile(path)
		}
		return fileSelectedMsg{kind: kind, state: state, err: err}
	})
}

func (m appModel) cmdUpload() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		state, err := svc.Upload(ctx)
		return uploadDoneMsg{state: state, err: err}
	})
}

func (m appModel) cmdProcess() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		state, err := svc.Process(ctx)
		return processDoneMsg{state: state, err: err}
	})
}

func (m appModel) cmdRefreshStatus(manual bool) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		state, err := svc.RefreshStatus(ctx)
		return statusRefreshedMsg{state: state, err: err, manual: manual}
	})
}

func (m appModel) cmdDownloadAll() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		saved, err := svc.DownloadAll(ctx)
		if err != nil {
			return downloadDoneMsg{state: svc.State(), err: err}
		}
		return downloadDoneMsg{files: []models.SavedFile{saved}, state: svc.State()}
	})
}

func (m appModel) cmdDownloadOne(filename string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		saved, err := svc.DownloadOne(ctx, filename)
		if err != nil {
			return downloadDoneMsg{state: svc.State(), err: err}
		}
		return downloadDoneMsg{files: []models.SavedFile{saved}, state: svc.State()}
	})
}

func (m appModel) cmdDownloadPair(index int) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return safeCmd(func() tea.Msg {
		saved, err := svc.DownloadLetterPair(ctx, index)
		return downloadDoneMsg{files: saved, state: svc.State(), err: err}
	})
}

func (m appModel) cmdSyncState() tea.Cmd {
	svc := m.svc
	return tea.Tick(stateSyncInterval, func(time.Time) tea.Msg {
		return stateSyncMsg{state: svc.State()}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{path: text}
	}
}

func cmdClearNotice(seq int) tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
