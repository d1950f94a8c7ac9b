// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerWorkers contains the development server worker settings.
type ServerWorkers struct {
	SessionReapInterval time.Duration
	SessionIdleTimeout  time.Duration
}

// ServerConfig is the development server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ClientApp
	Auth    Auth
	Storage Storage
	Server  Server
	Workers ServerWorkers
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return NewServerConfig(cfg)
}

// NewServerConfig maps the fields of cfg used by the server and validates
// them.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     ClientApp{Version: cfg.App.Version, LogLevel: cfg.App.LogLevel},
		Auth:    cfg.Auth,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: ServerWorkers{
			SessionReapInterval: cfg.Workers.SessionReapInterval,
			SessionIdleTimeout:  cfg.Workers.SessionIdleTimeout,
		},
	}

	return serverCfg, serverCfg.validate()
}
