// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The HTTP handler only keeps the backend pointer at construction time, so
// nil is enough here.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.ServerConfig{Server: config.Server{HTTPAddress: ":4064"}}

	h, err := NewHandlers(nil, cfg, prometheus.NewRegistry(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, &config.ServerConfig{}, prometheus.NewRegistry(), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_MetricsRegisteredOnce(t *testing.T) {
	cfg := &config.ServerConfig{Server: config.Server{HTTPAddress: ":4064"}}
	reg := prometheus.NewRegistry()

	_, err := NewHandlers(nil, cfg, reg, logger.Nop())
	require.NoError(t, err)

	_, err = NewHandlers(nil, cfg, reg, logger.Nop())
	assert.Error(t, err)
}
