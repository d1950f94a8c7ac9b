// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/registry"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/service"
	"github.com/ome/openmicroscopy-sub022/internal/workers"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Factory opens sessions against one server.
type Factory struct {
	connector remote.Connector
	cfg       *config.ClientConfig
	metrics   prometheus.Registerer
	logger    *logger.Logger

	newGateway func() gateway.Gateway
}

// NewFactory returns a factory dialing through connector. Gateway metrics
// of every session go to metrics; a nil metrics disables them.
func NewFactory(connector remote.Connector, cfg *config.ClientConfig, metrics prometheus.Registerer, log *logger.Logger) *Factory {
	f := &Factory{
		connector: connector,
		cfg:       cfg,
		metrics:   metrics,
		logger:    log.Component("client"),
	}
	f.newGateway = func() gateway.Gateway {
		return gateway.New(f.connector, f.cfg.Gateway, f.metrics, log)
	}
	return f
}

// Session is everything bound to one login. It is built by
// [Factory.Login] and torn down by [Session.Logout].
type Session struct {
	gateway  gateway.Gateway
	services *service.Services
	registry *registry.Registry
	workers  *workers.Workers

	logger *logger.Logger
	once   sync.Once
}

// Login opens a session as creds and starts its keep-alive.
func (f *Factory) Login(ctx context.Context, creds remote.Credentials) (*Session, error) {
	gw := f.newGateway()
	user, err := gw.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.SetCredentials(creds)
	reg.SetCurrentUser(user)

	s := &Session{
		gateway:  gw,
		services: service.NewServices(gw, reg, f.cfg.Gateway, f.logger),
		registry: reg,
		workers:  workers.New(
			workers.NewTicker("keep-alive", f.cfg.Workers.KeepAliveInterval, gw.KeepAlive, f.logger),
		),
		logger:   f.logger.Component("session"),
	}
	// The keep-alive outlives the login request.
	s.workers.Start(context.Background())

	s.logger.Info().Str("user", creds.UserName).Int64("user_id", user.ID()).Msg("session opened")
	return s, nil
}

// Reconnect closes old and logs in again with the credentials it was
// opened with.
func (f *Factory) Reconnect(ctx context.Context, old *Session) (*Session, error) {
	creds, ok := old.registry.Credentials()
	if !ok {
		return nil, ErrNoCredentials
	}
	old.Logout(ctx)

	s, err := f.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}
	return s, nil
}

func (s *Session) Gateway() gateway.Gateway     { return s.gateway }
func (s *Session) Services() *service.Services  { return s.services }
func (s *Session) Registry() *registry.Registry { return s.registry }

// User returns the logged-in experimenter.
func (s *Session) User() *models.ExperimenterData { return s.registry.CurrentUser() }

// Logout stops the keep-alive and closes the gateway session. Only the
// first call has any effect.
func (s *Session) Logout(ctx context.Context) {
	s.once.Do(func() {
		s.workers.Stop()
		s.gateway.Logout(ctx)
		// Credentials are kept so a closed session can still be reopened.
		creds, ok := s.registry.Credentials()
		s.registry.Clear()
		if ok {
			s.registry.SetCredentials(creds)
		}
		s.logger.Info().Msg("session closed")
	})
}
