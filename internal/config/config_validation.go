// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] for values no binary can
// use. Binary-specific requirements are checked by the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Gateway.ThumbnailRecycleThreshold < 0 || cfg.Gateway.RetryAttempts < 0 {
		return fmt.Errorf("%w: negative gateway setting", ErrInvalidGatewayConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Gateway.ThumbnailRecycleThreshold <= 0 || cfg.Gateway.RetryDelay <= 0 {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Workers.KeepAliveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionReapInterval <= 0 || cfg.Workers.SessionIdleTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
