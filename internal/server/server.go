// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/handler"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer wires the HTTP transport of handlers and the session reaper of
// b.
func NewServer(handlers *handler.Handlers, b *backend.Backend, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger),
		workers:    workers.New(NewSessionReaper(b, cfg.Workers, logger)),
		logger:     logger,
	}, nil
}

// NewSessionReaper returns a worker closing the sessions idle for longer
// than cfg.SessionIdleTimeout.
func NewSessionReaper(b *backend.Backend, cfg config.ServerWorkers, logger *logger.Logger) workers.Worker {
	return workers.NewTicker("session-reaper", cfg.SessionReapInterval, func(ctx context.Context) error {
		if n := b.Reap(ctx, cfg.SessionIdleTimeout); n > 0 {
			logger.Info().Int("sessions", n).Msg("idle sessions reaped")
		}
		return nil
	}, logger)
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) run(ctx context.Context) {
	s.workers.Start(ctx)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	served := make(chan struct{})
	go func() {
		s.httpServer.RunServer()
		close(served)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
	case <-served:
		s.workers.Stop()
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	s.workers.Stop()
}
