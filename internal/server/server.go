package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/config"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger

	// ready receives the bound address once the listener is open.
	ready chan string
}

func NewServer(handler http.Handler, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg),
		address:    cfg.HTTPAddress,
		logger:     logger,
		ready:      make(chan string, 1),
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
	s.ready <- ln.Addr().String()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.httpServer.serve(ln)
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
