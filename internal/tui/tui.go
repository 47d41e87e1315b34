package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the item form until the user quits. greeting is the
// server's welcome message fetched at startup; it may be empty when the
// server was unreachable.
func (t *TUI) Run(ctx context.Context, greeting string) error {
	model := newAppModel(ctx, t.services, greeting)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return nil
	}

	return result.err
}
