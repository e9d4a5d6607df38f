package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
)

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.showDetail:
		item, _ := m.current()
		body = detailModel{item: item}.View()
	default:
		body = m.mainView()
	}

	if m.loading {
		body += "\n\n" + m.loadingOverlay.View(m.spinner.View())
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) mainView() string {
	var b strings.Builder

	spin := ""
	if m.refreshing || m.state.Status.Kind == models.StatusProcessing {
		spin = m.spinner.View()
	}
	fmt.Fprintf(&b, "Статус: %s %s\n\n", statusIcon(m.state.Status.Kind, spin), utils.StripControl(m.state.Status.Message))

	b.WriteString(m.fileSlotView("1. Файл отчетности", focusReporting, m.state.ReportingFile))
	b.WriteString("\n")
	b.WriteString(m.fileSlotView("2. Файл СЭД", focusSed, m.state.SedFile))
	b.WriteString("\n")

	upload := "ctrl+u: загрузить файлы"
	if !m.state.CanUpload() {
		upload = disabledStyle.Render(upload + " (выберите оба файла)")
	}
	b.WriteString(upload)
	b.WriteString("\n")

	if m.state.FilesUploaded {
		b.WriteString("ctrl+g: обработать данные\n")
	}

	if m.state.DataProcessed {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("РЕЗУЛЬТАТЫ"))
		b.WriteString("\n")
		b.WriteString(renderSummary(m.state))
		b.WriteString("\n\n")
		b.WriteString(renderLetterList(m.items, m.cursor, m.focus == focusResults))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(utils.StripControl(m.notice))
		b.WriteString("\n")
	}

	return renderPage("ГЕНЕРАТОР ПИСЕМ О ПРОСРОЧКЕ", b.String(), m.hotKeys())
}

func (m appModel) fileSlotView(title string, area focusArea, sel *models.FileSelection) string {
	var b strings.Builder

	if m.focus == area {
		title = focusedStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(m.inputs[area].View())
	b.WriteString("\n")
	b.WriteString(fileSlotStatus(sel))
	b.WriteString("\n")

	return b.String()
}

func fileSlotStatus(sel *models.FileSelection) string {
	if sel == nil {
		return disabledStyle.Render("(не выбран)")
	}

	status := successStyle.Render("✓") + fmt.Sprintf(" %s (%s)", utils.StripControl(sel.Name), formatSize(sel.Size))
	if sel.Warning != "" {
		status += "\n" + failureStyle.Render("! "+utils.StripControl(sel.Warning))
	}
	return status
}

func (m appModel) hotKeys() string {
	parts := []string{"tab: поле", "enter: выбрать файл", "ctrl+r: статус"}
	if m.state.DataProcessed {
		parts = append(parts, "ctrl+o: скачать все")
	}
	if m.focus == focusResults {
		parts = append(parts, "↑/↓: письмо", "l: письмо", "p: приложение", "b: оба", "enter: подробно")
		if m.lastSaved != "" {
			parts = append(parts, "c: копировать путь")
		}
		parts = append(parts, "q: выход")
	}
	parts = append(parts, "f1: о программе")
	return strings.Join(parts, "  ")
}
