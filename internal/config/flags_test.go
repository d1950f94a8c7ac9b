// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 4064}, expected: ":4064"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "localhost", input: "localhost:4064", expectedAddr: NetAddress{Host: "localhost", Port: 4064}},
		{name: "ip", input: "127.0.0.1:80", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 80}},
		{name: "any host", input: ":9000", expectedAddr: NetAddress{Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be in 1..65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be in 1..65535"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags("test", []string{
		"-a", "localhost:8080",
		"-server", "http://omero.example.org",
		"-d", "/tmp/omero.db",
		"-driver", "sqlite3",
		"-config", "/path/to/config.json",
		"-token-sign-key", "jwt_secret",
		"-token-duration", "1h",
		"-request-timeout", "30s",
		"-thumbnail-recycle", "10",
		"-retry-attempts", "2",
		"-retry-delay", "50ms",
		"-keep-alive", "1m",
		"-seed-demo",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://omero.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/omero.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10, cfg.Gateway.ThumbnailRecycleThreshold)
	assert.Equal(t, 2, cfg.Gateway.RetryAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.Gateway.RetryDelay)
	assert.Equal(t, time.Minute, cfg.Workers.KeepAliveInterval)
	assert.True(t, cfg.Server.SeedDemoData)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags("test", nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags("test", []string{"-grpc-address", "x"})
	assert.Error(t, err)
}
