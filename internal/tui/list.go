package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/shopspring/decimal"
)

// letterItem is one row of the results list with its two downloadable
// documents.
type letterItem struct {
	number       int
	summary      models.LetterSummary
	letterFile   string
	appendixFile string
}

func buildLetterItems(letters []models.LetterSummary) []letterItem {
	items := make([]letterItem, 0, len(letters))
	for i, l := range letters {
		items = append(items, letterItem{
			number:       i + 1,
			summary:      l,
			letterFile:   l.LetterFileName(i),
			appendixFile: l.AppendixFileName(i),
		})
	}
	return items
}

func statusIcon(kind models.StatusKind, spin string) string {
	switch kind {
	case models.StatusSuccess:
		return successStyle.Render("✓")
	case models.StatusError:
		return failureStyle.Render("✗")
	case models.StatusProcessing:
		if spin != "" {
			return spin
		}
		return "…"
	default:
		return "•"
	}
}

func renderSummary(state models.ClientState) string {
	amount, penalty, positions := decimal.Zero, decimal.Zero, 0
	for _, l := range state.Letters {
		amount = amount.Add(l.TotalAmount)
		penalty = penalty.Add(l.TotalPenalty)
		positions += l.TotalPositions
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Сгенерировано писем: %d\n", state.LettersCount)
	// после перезапуска имена файлов неизвестны, сервер отдаёт только счётчик
	files := ""
	if len(state.FilesGenerated) > 0 {
		files = strconv.Itoa(len(state.FilesGenerated))
	}
	fmt.Fprintf(&b, "Файлов сгенерировано: %s\n", valueOrDash(files))
	fmt.Fprintf(&b, "Просроченных позиций: %d\n", positions)
	fmt.Fprintf(&b, "Сумма просрочки: %s\n", formatCurrency(amount))
	fmt.Fprintf(&b, "Сумма пени: %s", formatCurrency(penalty))
	if !state.ProcessedAt.IsZero() {
		fmt.Fprintf(&b, "\nОбработано: %s", state.ProcessedAt.Local().Format("02.01.2006 15:04"))
	}
	return summaryStyle.Render(b.String())
}

func renderLetterList(items []letterItem, cursor int, focused bool) string {
	if len(items) == 0 {
		return "Нет писем"
	}

	var b strings.Builder
	for i, item := range items {
		marker := "  "
		if i == cursor {
			marker = "> "
		}

		title := fmt.Sprintf("%s%d. %s, заказ %s",
			marker,
			item.number,
			fitText(utils.StripControl(item.summary.ContractorName), 48),
			utils.StripControl(item.summary.OrderNumber.String()),
		)
		if i == cursor && focused {
			title = focusedStyle.Render(title)
		}
		b.WriteString(title)
		b.WriteString("\n")

		fmt.Fprintf(&b, "     Сумма: %s  Пени: %s  Позиций: %d\n",
			formatCurrency(item.summary.TotalAmount),
			formatCurrency(item.summary.TotalPenalty),
			item.summary.TotalPositions,
		)
		fmt.Fprintf(&b, "     [l] %s\n", utils.StripControl(item.letterFile))
		fmt.Fprintf(&b, "     [p] %s\n", utils.StripControl(item.appendixFile))
	}

	return strings.TrimRight(b.String(), "\n")
}
