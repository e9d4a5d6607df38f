package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-letters-client/internal/adapter"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/mock"
	"github.com/MKhiriev/go-letters-client/internal/service"
	"github.com/MKhiriev/go-letters-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T, state models.ClientState) (appModel, *mock.MockLettersService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockLettersService(ctrl)

	m := newAppModel(context.Background(), svc, state, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	m.refreshing = false
	return m, svc
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func selectedState() models.ClientState {
	s := service.NewState()
	s.ReportingFile = &models.FileSelection{Kind: models.ReportingFile, Path: "/data/r.xlsx", Name: "r.xlsx", Size: 2048}
	s.SedFile = &models.FileSelection{Kind: models.SedFile, Path: "/data/s.xlsx", Name: "s.xlsx", Size: 100}
	return s
}

func testLetters(n int) []models.LetterSummary {
	letters := make([]models.LetterSummary, 0, n)
	for i := 0; i < n; i++ {
		letters = append(letters, models.LetterSummary{
			ContractorName:      "ООО Контрагент",
			ContractorShortName: "ABC",
			OrderNumber:         models.FlexString("123"),
			TotalAmount:         decimal.NewFromInt(1000),
			TotalPenalty:        decimal.RequireFromString("10.5"),
			TotalPositions:      1,
		})
	}
	return letters
}

func processedState(n int) models.ClientState {
	s := selectedState()
	s.FilesUploaded = true
	s.DataProcessed = true
	s.Letters = testLetters(n)
	s.LettersCount = n
	for _, l := range s.Letters {
		s.FilesGenerated = append(s.FilesGenerated, l.LetterFileName(0), l.AppendixFileName(0))
	}
	return s
}

func TestUpload_RequiresBothFiles(t *testing.T) {
	tests := []struct {
		name  string
		state models.ClientState
	}{
		{name: "nothing selected", state: service.NewState()},
		{
			name: "only reporting",
			state: func() models.ClientState {
				s := selectedState()
				s.SedFile = nil
				return s
			}(),
		},
		{
			name: "only sed",
			state: func() models.ClientState {
				s := selectedState()
				s.ReportingFile = nil
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// мок без ожиданий: любой вызов сервиса провалит тест
			m, _ := newTestModel(t, tt.state)

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
			assert.Nil(t, cmd)
			assert.False(t, m.loading)
			assert.True(t, m.showError)
			assert.Equal(t, "Пожалуйста, выберите оба файла", m.errorOverlay.message)
		})
	}
}

func TestUpload_StartsLoading(t *testing.T) {
	m, _ := newTestModel(t, selectedState())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, service.StatusUploading, m.loadingOverlay.text)

	// клавиши во время загрузки игнорируются
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Nil(t, cmd)
	assert.True(t, m.loading)
}

func TestCmdUpload(t *testing.T) {
	m, svc := newTestModel(t, selectedState())

	uploaded := selectedState()
	uploaded.FilesUploaded = true
	svc.EXPECT().Upload(gomock.Any()).Return(uploaded, nil)

	msg := m.cmdUpload()()
	done, ok := msg.(uploadDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
	assert.True(t, done.state.FilesUploaded)
}

func TestUploadDone(t *testing.T) {
	t.Run("success reveals processing", func(t *testing.T) {
		m, _ := newTestModel(t, selectedState())
		m.startLoading(service.StatusUploading)

		uploaded := selectedState()
		uploaded.FilesUploaded = true

		m, cmd := update(t, m, uploadDoneMsg{state: uploaded})
		assert.NotNil(t, cmd)
		assert.False(t, m.loading)
		assert.False(t, m.showError)
		assert.Equal(t, service.StatusUploaded, m.notice)
		assert.Contains(t, m.View(), "ctrl+g: обработать данные")
	})

	t.Run("server error keeps state", func(t *testing.T) {
		m, _ := newTestModel(t, selectedState())
		m.startLoading(service.StatusUploading)

		failed := service.Reduce(selectedState(), service.UploadFailed{})
		srvErr := &adapter.ServerError{StatusCode: 400, Message: "Разрешены только Excel файлы (.xlsx, .xls)"}

		m, _ = update(t, m, uploadDoneMsg{state: failed, err: srvErr})
		assert.False(t, m.loading)
		assert.False(t, m.state.FilesUploaded)
		assert.True(t, m.showError)
		assert.Equal(t, srvErr.Message, m.errorOverlay.message)
		assert.NotContains(t, m.View(), "ctrl+g: обработать данные")
	})
}

func TestProcess_IgnoredBeforeUpload(t *testing.T) {
	m, _ := newTestModel(t, selectedState())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
}

func TestProcessDone_RendersLetterItems(t *testing.T) {
	before := selectedState()
	before.FilesUploaded = true
	m, _ := newTestModel(t, before)
	m.startLoading(service.StatusProcessing)

	after := processedState(3)
	m, _ = update(t, m, processDoneMsg{state: after})

	assert.False(t, m.loading)
	assert.Equal(t, focusResults, m.focus)
	require.Len(t, m.items, 3)
	for i, item := range m.items {
		assert.Equal(t, i+1, item.number)
	}
	assert.Equal(t, "letter_1_ABC_123.docx", m.items[0].letterFile)
	assert.Equal(t, "appendix_1_ABC_123.docx", m.items[0].appendixFile)
	assert.Equal(t, "letter_3_ABC_123.docx", m.items[2].letterFile)

	view := m.View()
	assert.Contains(t, view, "РЕЗУЛЬТАТЫ")
	assert.Contains(t, view, "[p] appendix_2_ABC_123.docx")
	assert.Contains(t, view, "Сгенерировано писем: 3")
	assert.Contains(t, view, "Файлов сгенерировано: 6")
}

func TestRenderSummary_GeneratedFiles(t *testing.T) {
	processed := processedState(2)
	processed.FilesGenerated = processed.FilesGenerated[:4]
	assert.Contains(t, renderSummary(processed), "Файлов сгенерировано: 4")

	// сессия, восстановленная по статусу сервера, не знает имён файлов
	restored := processedState(2)
	restored.FilesGenerated = nil
	summary := renderSummary(restored)
	assert.Contains(t, summary, "Сгенерировано писем: 2")
	assert.Contains(t, summary, "Файлов сгенерировано: -")
}

func TestProcessDone_Failure(t *testing.T) {
	before := selectedState()
	before.FilesUploaded = true
	m, _ := newTestModel(t, before)
	m.startLoading(service.StatusProcessing)

	failed := service.Reduce(before, service.ProcessFailed{})
	m, _ = update(t, m, processDoneMsg{state: failed, err: &adapter.ServerError{StatusCode: 500, Message: "Ошибка при обработке данных"}})

	assert.False(t, m.loading)
	assert.True(t, m.showError)
	assert.Equal(t, "Ошибка при обработке данных", m.errorOverlay.message)
	assert.Equal(t, models.StatusError, m.state.Status.Kind)
	assert.Empty(t, m.items)
}

func TestResults_DownloadKeys(t *testing.T) {
	m, svc := newTestModel(t, processedState(2))
	m.setFocus(focusResults)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m, cmd := update(t, m, keyRune('l'))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	svc.EXPECT().DownloadOne(gomock.Any(), "letter_2_ABC_123.docx").
		Return(models.SavedFile{Name: "letter_2_ABC_123.docx", Path: "/dl/letter_2_ABC_123.docx", Size: 10}, nil)
	svc.EXPECT().State().Return(processedState(2))

	msg := m.cmdDownloadOne(m.items[m.cursor].letterFile)()
	m, _ = update(t, m, msg)
	assert.False(t, m.loading)
	assert.Equal(t, "/dl/letter_2_ABC_123.docx", m.lastSaved)
	assert.Contains(t, m.notice, "letter_2_ABC_123.docx")
}

func TestCmdDownloadPair(t *testing.T) {
	m, svc := newTestModel(t, processedState(1))

	svc.EXPECT().DownloadLetterPair(gomock.Any(), 0).Return([]models.SavedFile{
		{Name: "letter_1_ABC_123.docx", Path: "/dl/letter_1_ABC_123.docx"},
		{Name: "appendix_1_ABC_123.docx", Path: "/dl/appendix_1_ABC_123.docx"},
	}, nil)
	svc.EXPECT().State().Return(processedState(1))

	m, _ = update(t, m, m.cmdDownloadPair(0)())
	assert.Equal(t, "/dl/appendix_1_ABC_123.docx", m.lastSaved)
	assert.Contains(t, m.notice, "letter_1_ABC_123.docx, appendix_1_ABC_123.docx")
}

func TestDownloadAll_NetworkFailure(t *testing.T) {
	m, svc := newTestModel(t, processedState(1))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.NotNil(t, cmd)
	assert.Equal(t, service.StatusPreparingArchive, m.loadingOverlay.text)

	netErr := &adapter.NetworkError{Op: "download_all", Err: errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")}
	svc.EXPECT().DownloadAll(gomock.Any()).Return(models.SavedFile{}, netErr)
	svc.EXPECT().State().Return(service.Reduce(processedState(1), service.DownloadFailed{Err: netErr}))

	m, _ = update(t, m, m.cmdDownloadAll()())
	assert.False(t, m.loading)
	assert.True(t, m.showError)
	assert.Equal(t, msgServerUnavailable, m.errorOverlay.message)
	assert.Empty(t, m.lastSaved)
	assert.True(t, m.state.DataProcessed)
}

func TestDownloadAll_IgnoredBeforeProcessing(t *testing.T) {
	m, _ := newTestModel(t, selectedState())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
}

func TestErrorOverlay_BlocksUntilClosed(t *testing.T) {
	m, _ := newTestModel(t, processedState(1))
	m.setFocus(focusResults)
	m.showErrorf("Файл не найден")

	m, cmd := update(t, m, keyRune('l'))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Файл не найден")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
	assert.Empty(t, m.errorOverlay.message)
}

func TestFileSelected(t *testing.T) {
	t.Run("valid file moves focus", func(t *testing.T) {
		m, svc := newTestModel(t, service.NewState())

		state := service.NewState()
		state.ReportingFile = &models.FileSelection{Kind: models.ReportingFile, Path: "/data/r.xlsx", Name: "r.xlsx"}
		svc.EXPECT().SelectReportingFile("/data/r.xlsx").Return(state, nil)

		m.inputs[focusReporting].SetValue("  /data/r.xlsx ")
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)

		m, _ = update(t, m, cmd())
		assert.True(t, m.state.ReportingFileSelected())
		assert.Equal(t, focusSed, m.focus)
		assert.Contains(t, m.View(), "r.xlsx")
	})

	t.Run("rejected file shows error", func(t *testing.T) {
		m, _ := newTestModel(t, service.NewState())

		err := &service.ValidationError{Field: "sed_file", Err: service.ErrUnsupportedFileType}
		m, _ = update(t, m, fileSelectedMsg{kind: models.SedFile, state: service.NewState(), err: err})
		assert.True(t, m.showError)
		assert.Equal(t, "Разрешены только Excel файлы (.xlsx, .xls)", m.errorOverlay.message)
	})

	t.Run("warning shown as notice", func(t *testing.T) {
		m, _ := newTestModel(t, service.NewState())

		state := service.NewState()
		state.ReportingFile = &models.FileSelection{Kind: models.ReportingFile, Name: "r.xlsx", Warning: `Лист "Отчетность" не найден`}
		m, cmd := update(t, m, fileSelectedMsg{kind: models.ReportingFile, state: state})
		assert.NotNil(t, cmd)
		assert.False(t, m.showError)
		assert.Contains(t, m.notice, "не найден")
	})
}

func TestStatusRefreshed(t *testing.T) {
	t.Run("startup failure is silent", func(t *testing.T) {
		m, _ := newTestModel(t, service.NewState())
		m.refreshing = true

		m, _ = update(t, m, statusRefreshedMsg{state: service.NewState(), err: &adapter.NetworkError{Op: "status", Err: errors.New("refused")}})
		assert.False(t, m.refreshing)
		assert.False(t, m.showError)
		assert.Empty(t, m.notice)
	})

	t.Run("restores processed session", func(t *testing.T) {
		m, _ := newTestModel(t, service.NewState())
		m.refreshing = true

		m, _ = update(t, m, statusRefreshedMsg{state: processedState(2)})
		assert.True(t, m.state.FilesUploaded)
		assert.True(t, m.state.DataProcessed)
		assert.Len(t, m.items, 2)
	})

	t.Run("manual refresh", func(t *testing.T) {
		m, svc := newTestModel(t, service.NewState())

		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
		require.NotNil(t, cmd)
		assert.True(t, m.refreshing)

		svc.EXPECT().RefreshStatus(gomock.Any()).Return(service.NewState(), nil)
		m, _ = update(t, m, m.cmdRefreshStatus(true)())
		assert.Equal(t, "Статус обновлён", m.notice)
	})
}

func TestStateSync_SkippedWhileLoading(t *testing.T) {
	m, _ := newTestModel(t, selectedState())
	m.startLoading(service.StatusUploading)

	m, cmd := update(t, m, stateSyncMsg{state: processedState(1)})
	assert.NotNil(t, cmd)
	assert.False(t, m.state.DataProcessed)

	m.stopLoading()
	m, _ = update(t, m, stateSyncMsg{state: processedState(1)})
	assert.True(t, m.state.DataProcessed)
}

func TestSafeCmd_RecoversPanic(t *testing.T) {
	m, _ := newTestModel(t, selectedState())
	m.startLoading(service.StatusUploading)

	msg := safeCmd(func() tea.Msg { panic("boom") })()
	require.IsType(t, panicMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.False(t, m.loading)
	assert.True(t, m.showError)
	assert.Equal(t, msgUnexpected, m.errorOverlay.message)
}

func TestNotice_ClearedByLatestTick(t *testing.T) {
	m, _ := newTestModel(t, service.NewState())

	m.setNotice("первое")
	m.setNotice("второе")

	m, _ = update(t, m, clearNoticeMsg{seq: 1})
	assert.Equal(t, "второе", m.notice)

	m, _ = update(t, m, clearNoticeMsg{seq: 2})
	assert.Empty(t, m.notice)
}

func TestCycleFocus(t *testing.T) {
	m, _ := newTestModel(t, service.NewState())
	assert.Equal(t, focusReporting, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSed, m.focus)
	// без результатов фокус возвращается к первому полю
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusReporting, m.focus)

	p, _ := newTestModel(t, processedState(1))
	p, _ = update(t, p, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusResults, p.focus)
}

func TestBuildInfoWindow(t *testing.T) {
	m, _ := newTestModel(t, service.NewState())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "Версия: 1.0.0")
	assert.Contains(t, m.View(), "Дата: N/A")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}
