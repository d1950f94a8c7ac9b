// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/handler/http"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Handlers groups the transports of the development server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(b *backend.Backend, cfg *config.ServerConfig, reg *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(b, cfg, reg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
