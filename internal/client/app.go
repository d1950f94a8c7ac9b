// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/adapter"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/tui"
	"github.com/prometheus/client_golang/prometheus"
)

// App is the terminal client: a factory dialing the configured server and
// the browser driving it.
type App struct {
	factory *Factory
	tui     *tui.TUI
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	connector, err := adapter.NewHTTPConnector(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}

	factory := NewFactory(connector, cfg, prometheus.NewRegistry(), log)
	return &App{
		factory: factory,
		tui:     tui.New(browserConnector{factory}, cfg.App.Version, log),
		logger:  log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")
	return a.tui.Run(ctx)
}

// browserConnector exposes a Factory to the browser.
type browserConnector struct {
	factory *Factory
}

func (c browserConnector) Login(ctx context.Context, creds remote.Credentials) (tui.Session, error) {
	s, err := c.factory.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c browserConnector) Reconnect(ctx context.Context, old tui.Session) (tui.Session, error) {
	prev, ok := old.(*Session)
	if !ok {
		return nil, fmt.Errorf("reconnect: unexpected session type %T", old)
	}
	s, err := c.factory.Reconnect(ctx, prev)
	if err != nil {
		return nil, err
	}
	return s, nil
}
