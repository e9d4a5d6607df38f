package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}

type loadingOverlayModel struct {
	text string
}

func (m loadingOverlayModel) View(spin string) string {
	return overlayBoxStyle.Render(spin + " " + m.text + "\n\nПожалуйста, подождите")
}
