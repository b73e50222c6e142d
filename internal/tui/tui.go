// Package tui renders the interactive user browser of the example client.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/service"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	ids      []int64
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.Services, ids []int64, info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, ids: ids, info: info, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled. A positive interval
// also starts the background refresh job; its results are pushed into the
// running program.
func (t *TUI) Run(ctx context.Context, interval time.Duration) error {
	m := newModel(ctx, t.services.Users, t.ids, t.info)
	m.copy = clipboard.WriteAll

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.Refresh.SetHandler(func(res service.RefreshResult) {
		p.Send(refreshMsg{result: res})
	})
	defer t.services.Refresh.SetHandler(nil)

	if interval > 0 {
		t.services.Refresh.Start(ctx, t.ids, interval)
		defer t.services.Refresh.Stop()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("tui stopped by signal")
		return nil
	}
	return err
}
