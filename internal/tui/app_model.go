package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/service"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusReporting focusArea = iota
	focusSed
	focusResults
)

type appModel struct {
	ctx       context.Context
	svc       service.LettersService
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	state  models.ClientState
	items  []letterItem
	inputs [2]textinput.Model
	focus  focusArea
	cursor int

	loading        bool
	loadingOverlay loadingOverlayModel
	refreshing     bool
	spinner        spinner.Model

	showError     bool
	errorOverlay  errorOverlayModel
	showDetail    bool
	showBuildInfo bool

	notice    string
	noticeSeq int
	lastSaved string

	width  int
	height int
}

func newAppModel(ctx context.Context, svc service.LettersService, state models.ClientState, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	reporting := textinput.New()
	reporting.Placeholder = "путь к файлу отчетности (.xlsx, .xls)"
	reporting.CharLimit = 4096
	reporting.Width = 60
	reporting.Focus()

	sed := textinput.New()
	sed.Placeholder = "путь к файлу СЭД (.xlsx, .xls)"
	sed.CharLimit = 4096
	sed.Width = 60

	if state.ReportingFile != nil {
		reporting.SetValue(state.ReportingFile.Path)
	}
	if state.SedFile != nil {
		sed.SetValue(state.SedFile.Path)
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		svc:       svc,
		buildInfo: buildInfo,
		log:       log,
		inputs:    [2]textinput.Model{reporting, sed},
		spinner:   s,
	}
	// the first status check is started by Init
	m.refreshing = true
	m.setState(state)
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdRefreshStatus(false), m.cmdSyncState())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case spinner.TickMsg:
		if !m.loading && !m.refreshing && m.state.Status.Kind != models.StatusProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fileSelectedMsg:
		m.setState(msg.state)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if sel := selectionOf(msg.state, msg.kind); sel != nil {
			if sel.Warning != "" {
				return m, m.setNotice("Внимание: " + sel.Warning)
			}
			if msg.kind == models.ReportingFile && m.focus == focusReporting {
				m.setFocus(focusSed)
			}
		}
		return m, nil
	case uploadDoneMsg:
		m.stopLoading()
		m.setState(msg.state)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.setNotice(service.StatusUploaded)
	case processDoneMsg:
		m.stopLoading()
		m.setState(msg.state)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.cursor = 0
		if len(m.items) > 0 {
			m.setFocus(focusResults)
		}
		return m, m.setNotice(m.state.Status.Message)
	case statusRefreshedMsg:
		m.refreshing = false
		m.setState(msg.state)
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Bool("manual", msg.manual).Msg("status refresh failed")
			if msg.manual {
				return m, m.setNotice("Не удалось получить статус: " + humanizeError(msg.err))
			}
			return m, nil
		}
		if msg.manual {
			return m, m.setNotice("Статус обновлён")
		}
		return m, nil
	case downloadDoneMsg:
		m.stopLoading()
		m.setState(msg.state)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if len(msg.files) == 0 {
			return m, nil
		}
		names := make([]string, 0, len(msg.files))
		for _, f := range msg.files {
			names = append(names, f.Name)
		}
		last := msg.files[len(msg.files)-1]
		m.lastSaved = last.Path
		return m, m.setNotice(fmt.Sprintf("Сохранено: %s → %s", strings.Join(names, ", "), filepath.Dir(last.Path)))
	case stateSyncMsg:
		if !m.loading && !m.refreshing {
			m.setState(msg.state)
		}
		return m, m.cmdSyncState()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, m.setNotice("Путь скопирован: " + msg.path)
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	case panicMsg:
		m.stopLoading()
		m.refreshing = false
		m.log.Error().Interface("panic", msg.value).Msg("command panicked")
		m.showErrorf(msgUnexpected)
		return m, nil
	}

	if m.focus == focusResults {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, keys.upload):
		if !m.state.CanUpload() {
			m.showErrorf(humanizeError(service.ErrFilesNotSelected))
			return m, nil
		}
		return m, tea.Batch(m.startLoading(service.StatusUploading), m.cmdUpload())
	case key.Matches(msg, keys.process):
		if !m.state.FilesUploaded {
			return m, nil
		}
		return m, tea.Batch(m.startLoading(service.StatusProcessing), m.cmdProcess())
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefreshStatus(true))
	case key.Matches(msg, keys.downloadAll):
		if !m.state.DataProcessed {
			return m, nil
		}
		return m, tea.Batch(m.startLoading(service.StatusPreparingArchive), m.cmdDownloadAll())
	}

	if m.focus == focusResults {
		return m.updateResults(msg)
	}
	return m.updateInput(msg)
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		kind := models.ReportingFile
		if m.focus == focusSed {
			kind = models.SedFile
		}
		path := strings.TrimSpace(m.inputs[m.focus].Value())
		return m, m.cmdSelectFile(kind, path)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showDetail = false
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if !m.showDetail && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if !m.showDetail && m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.showDetail = true
		}
	case key.Matches(msg, keys.letter):
		if item, ok := m.current(); ok {
			return m, tea.Batch(m.startLoading(service.StatusDownloading), m.cmdDownloadOne(item.letterFile))
		}
	case key.Matches(msg, keys.appendix):
		if item, ok := m.current(); ok {
			return m, tea.Batch(m.startLoading(service.StatusDownloading), m.cmdDownloadOne(item.appendixFile))
		}
	case key.Matches(msg, keys.pair):
		if _, ok := m.current(); ok {
			return m, tea.Batch(m.startLoading(service.StatusDownloading), m.cmdDownloadPair(m.cursor))
		}
	case key.Matches(msg, keys.copy):
		if m.lastSaved != "" {
			return m, cmdCopyToClipboard(m.lastSaved)
		}
	}
	return m, nil
}

func (m appModel) current() (letterItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return letterItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *appModel) setState(state models.ClientState) {
	m.state = state
	m.items = buildLetterItems(state.Letters)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.items) == 0 {
		m.showDetail = false
		if m.focus == focusResults {
			m.setFocus(focusReporting)
		}
	}
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	for i := range m.inputs {
		if focusArea(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if f != focusResults {
		m.showDetail = false
	}
}

func (m *appModel) cycleFocus(step int) {
	areas := []focusArea{focusReporting, focusSed}
	if len(m.items) > 0 {
		areas = append(areas, focusResults)
	}

	idx := 0
	for i, a := range areas {
		if a == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(areas)) % len(areas)
	m.setFocus(areas[idx])
}

func (m *appModel) startLoading(text string) tea.Cmd {
	m.loading = true
	m.loadingOverlay.text = text
	return m.spinner.Tick
}

func (m *appModel) stopLoading() {
	m.loading = false
	m.loadingOverlay.text = ""
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	return cmdClearNotice(m.noticeSeq)
}

func selectionOf(state models.ClientState, kind models.FileKind) *models.FileSelection {
	if kind == models.SedFile {
		return state.SedFile
	}
	return state.ReportingFile
}
