package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/utils"
)

type detailModel struct {
	item letterItem
}

func (m detailModel) View() string {
	s := m.item.summary

	var b strings.Builder
	fmt.Fprintf(&b, "Контрагент      : %s\n", valueOrDash(utils.StripControl(s.ContractorName)))
	fmt.Fprintf(&b, "Краткое имя     : %s\n", valueOrDash(utils.StripControl(s.ContractorShortName)))
	fmt.Fprintf(&b, "Номер заказа    : %s\n", valueOrDash(utils.StripControl(s.OrderNumber.String())))
	fmt.Fprintf(&b, "БЕ              : %s\n", valueOrDash(utils.StripControl(s.BEName)))
	fmt.Fprintf(&b, "Рег. номер      : %s\n", valueOrDash(utils.StripControl(s.RegNumber)))
	fmt.Fprintf(&b, "Дата регистрации: %s\n", valueOrDash(utils.StripControl(s.RegDate)))
	fmt.Fprintf(&b, "Плановая дата   : %s\n", valueOrDash(utils.StripControl(s.PlannedDate)))
	fmt.Fprintf(&b, "Категория       : %s\n", valueOrDash(utils.StripControl(s.Category)))
	fmt.Fprintf(&b, "Позиций         : %d\n", s.TotalPositions)
	fmt.Fprintf(&b, "Сумма просрочки : %s\n", formatCurrency(s.TotalAmount))
	fmt.Fprintf(&b, "Сумма пени      : %s\n\n", formatCurrency(s.TotalPenalty))
	fmt.Fprintf(&b, "Письмо          : %s\n", utils.StripControl(m.item.letterFile))
	fmt.Fprintf(&b, "Приложение      : %s", utils.StripControl(m.item.appendixFile))

	title := fmt.Sprintf("ПИСЬМО №%d", m.item.number)
	return renderPage(title, b.String(), "l: письмо  p: приложение  b: оба  c: копировать путь  esc: назад")
}
