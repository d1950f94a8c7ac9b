// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/handler"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *backend.Backend {
	t.Helper()
	ctx := context.Background()
	db, err := store.NewDB(ctx, config.DB{Driver: store.DriverSQLite, DSN: filepath.Join(t.TempDir(), "server.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b := backend.New(store.NewStore(db), 1<<30, logger.Nop())
	require.NoError(t, b.Seed(ctx, "root-secret", false))
	return b
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().String()
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndShutdown(t *testing.T) {
	b := newTestBackend(t)
	cfg := &config.ServerConfig{
		App:     config.ClientApp{Version: "test"},
		Auth:    config.Auth{TokenSignKey: "k", TokenIssuer: "i", TokenDuration: time.Hour},
		Server:  config.Server{HTTPAddress: freeAddress(t)},
		Workers: config.ServerWorkers{SessionReapInterval: time.Hour, SessionIdleTimeout: time.Hour},
	}
	handlers, err := handler.NewHandlers(b, cfg, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, b, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.HTTPAddress + "/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSessionReaper(t *testing.T) {
	b := newTestBackend(t)
	_, err := b.Login(context.Background(), remote.Credentials{UserName: backend.RootUser, Password: "root-secret"})
	require.NoError(t, err)
	require.Equal(t, 1, b.Sessions())

	reaper := NewSessionReaper(b, config.ServerWorkers{SessionReapInterval: 5 * time.Millisecond, SessionIdleTimeout: time.Nanosecond}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reaper.Run(ctx)

	assert.Eventually(t, func() bool { return b.Sessions() == 0 }, time.Second, 5*time.Millisecond)
}
