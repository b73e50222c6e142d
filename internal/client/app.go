package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/config"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/service"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	ui       UI
	queue    *rxapi.SerialQueue
	logger   *logger.Logger
}

// NewApp assembles the client. queue must be the executor the services
// deliver refresh results on; App drains it on shutdown. ui may be nil
// when cfg.App.Interactive is false.
func NewApp(cfg *config.ClientConfig, services *service.Services, ui UI, queue *rxapi.SerialQueue, logger *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || queue == nil {
		return nil, errors.New("client: config, services and queue are required")
	}
	if cfg.App.Interactive && ui == nil {
		return nil, errors.New("client: interactive mode requires a UI")
	}

	return &App{cfg: cfg, services: services, ui: ui, queue: queue, logger: logger}, nil
}

// Run implements Client.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.drain()

	if a.cfg.App.Interactive {
		return a.ui.Run(ctx, a.cfg.Workers.RefreshInterval)
	}
	return a.runPlain(ctx)
}

func (a *App) runPlain(ctx context.Context) error {
	ids := a.cfg.App.UserIDs

	users, err := a.services.Users.LoadUsers(ctx, ids)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		a.logger.Info().Int64("id", u.ID).Str("username", u.Username).Str("email", u.Email).Msg(u.Title())
	}

	if len(ids) >= 2 {
		chain, err := a.services.Users.LoadChain(ctx, ids[0], ids[1])
		if err != nil {
			// non-fatal
			a.logger.Warn().Err(err).Msg("chained lookup failed")
		} else {
			a.logger.Info().Str("first", chain[0].Title()).Str("second", chain[1].Title()).Msg("chained lookup done")
		}
	}

	interval := a.cfg.Workers.RefreshInterval
	if interval <= 0 {
		return nil
	}

	a.services.Refresh.SetHandler(a.logRefresh)
	a.services.Refresh.Start(ctx, ids, interval)
	a.logger.Info().Dur("interval", interval).Msg("refresh job started")

	<-ctx.Done()
	a.services.Refresh.Stop()
	a.logger.Info().Msg("refresh job stopped")
	return nil
}

func (a *App) logRefresh(res service.RefreshResult) {
	if res.Err != nil {
		a.logger.Err(res.Err).Time("at", res.At).Msg("refresh failed")
		return
	}
	a.logger.Info().Int("count", len(res.Users)).Time("at", res.At).Msg("users refreshed")
}

func (a *App) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.queue.Close(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("refresh queue not drained")
	}
}
