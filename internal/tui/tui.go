package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/service"
	"github.com/MKhiriev/go-letters-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the letters client.
type TUI struct {
	svc       service.LettersService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(svc service.LettersService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{svc: svc, buildInfo: buildInfo, logger: logger}
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.svc, t.svc.State(), t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	default:
		t.logger.Error().Err(err).Msg("terminal UI stopped")
		return fmt.Errorf("terminal UI: %w", err)
	}
}
