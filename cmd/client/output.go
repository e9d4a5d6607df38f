package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func stageName(stage models.Stage) string {
	switch stage {
	case models.StageIdle:
		return "ожидание файлов"
	case models.StageFilesSelected:
		return "файлы выбраны"
	case models.StageFilesUploaded:
		return "файлы загружены"
	case models.StageDataProcessed:
		return "письма сгенерированы"
	default:
		return stage.String()
	}
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func printState(w io.Writer, state models.ClientState) {
	t := newTable("Параметр", "Значение").
		Row("Статус", utils.StripControl(state.Status.Message)).
		Row("Этап", stageName(state.Stage())).
		Row("Файлы загружены", yesNo(state.FilesUploaded)).
		Row("Данные обработаны", yesNo(state.DataProcessed)).
		Row("Писем", strconv.Itoa(state.LettersCount))

	fmt.Fprintln(w, t.Render())
}

func printLetters(w io.Writer, letters []models.LetterSummary) {
	if len(letters) == 0 {
		fmt.Fprintln(w, "Нет писем")
		return
	}

	t := newTable("№", "Контрагент", "Заказ", "Позиций", "Сумма", "Пени", "Письмо", "Приложение")
	for i, l := range letters {
		t.Row(
			strconv.Itoa(i+1),
			utils.StripControl(l.ContractorName),
			utils.StripControl(l.OrderNumber.String()),
			strconv.Itoa(l.TotalPositions),
			l.TotalAmount.StringFixed(2),
			l.TotalPenalty.StringFixed(2),
			utils.StripControl(l.LetterFileName(i)),
			utils.StripControl(l.AppendixFileName(i)),
		)
	}

	fmt.Fprintln(w, t.Render())
}

func printHistory(w io.Writer, records []models.DownloadRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "История пуста")
		return
	}

	t := newTable("Дата", "Файл", "Размер", "Путь")
	for _, r := range records {
		t.Row(
			r.DownloadedAt.Local().Format("02.01.2006 15:04:05"),
			r.FileName,
			strconv.FormatInt(r.Size, 10),
			r.Path,
		)
	}

	fmt.Fprintln(w, t.Render())
}
