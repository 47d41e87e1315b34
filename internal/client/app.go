package client

import (
	"context"

	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/service"
	"github.com/MKhiriev/go-item-service/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		logger:   logger,
	}, nil
}

// Run fetches the greeting from the root route (best-effort: an
// unreachable server only costs the header line) and hands control to
// the terminal UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	var greetingText string
	greeting, err := a.services.ItemClientService.Greet(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("greeting unavailable, starting without it")
	} else {
		greetingText = greeting.Message
	}

	return a.tui.Run(ctx, greetingText)
}
