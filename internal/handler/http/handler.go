// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler routes HTTP requests to a backend.
type Handler struct {
	backend *backend.Backend
	auth    config.Auth
	version string
	timeout time.Duration

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler returns a Handler serving b. Request metrics are registered on
// reg and exposed at /metrics.
func NewHandler(b *backend.Backend, cfg *config.ServerConfig, reg *prometheus.Registry, logger *logger.Logger) (*Handler, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics, err := newHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		backend:  b,
		auth:     cfg.Auth,
		version:  cfg.App.Version,
		timeout:  cfg.Server.RequestTimeout,
		registry: reg,
		metrics:  metrics,
		logger:   logger,
	}, nil
}
