// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(keepAlive time.Duration) *config.ClientConfig {
	return &config.ClientConfig{
		Gateway: config.Gateway{ThumbnailRecycleThreshold: 100, RetryAttempts: 1, RetryDelay: time.Millisecond},
		Workers: config.ClientWorkers{KeepAliveInterval: keepAlive},
	}
}

func newTestFactory(cfg *config.ClientConfig, gws ...gateway.Gateway) *Factory {
	f := NewFactory(nil, cfg, nil, logger.Nop())
	f.newGateway = func() gateway.Gateway {
		gw := gws[0]
		gws = gws[1:]
		return gw
	}
	return f
}

func testUser() *models.ExperimenterData {
	return models.NewExperimenterDataFrom(&remote.Experimenter{Base: remote.Base{ID: 7}, OmeName: "alice"})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	ctx := context.Background()
	creds := remote.Credentials{UserName: "alice", Password: "secret"}

	gw.EXPECT().Login(ctx, creds).Return(testUser(), nil)
	gw.EXPECT().KeepAlive(gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Logout(ctx).Times(1)

	s, err := newTestFactory(testConfig(time.Hour), gw).Login(ctx, creds)
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.User().ID())
	assert.Equal(t, gateway.Gateway(gw), s.Gateway())
	assert.NotNil(t, s.Services().DataService)
	assert.Equal(t, int64(7), s.Services().AdminService.CurrentUser().ID())

	stored, ok := s.Registry().Credentials()
	require.True(t, ok)
	assert.Equal(t, creds, stored)

	s.Logout(ctx)
	s.Logout(ctx)
	assert.Nil(t, s.User())
}

func TestLogin_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	ctx := context.Background()

	fail := gateway.OutOfService("login", errors.New("refused"))
	gw.EXPECT().Login(ctx, gomock.Any()).Return(nil, fail)

	s, err := newTestFactory(testConfig(time.Hour), gw).Login(ctx, remote.Credentials{UserName: "alice"})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, gateway.ErrOutOfService)
}

func TestKeepAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	ctx := context.Background()

	pinged := make(chan struct{}, 1)
	gw.EXPECT().Login(ctx, gomock.Any()).Return(testUser(), nil)
	gw.EXPECT().KeepAlive(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)
	gw.EXPECT().Logout(ctx)

	s, err := newTestFactory(testConfig(5*time.Millisecond), gw).Login(ctx, remote.Credentials{UserName: "alice"})
	require.NoError(t, err)

	select {
	case <-pinged:
	case <-time.After(time.Second):
		t.Fatal("keep-alive never ran")
	}
	s.Logout(ctx)
}

func TestReconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockGateway(ctrl)
	second := mock.NewMockGateway(ctrl)
	ctx := context.Background()
	creds := remote.Credentials{UserName: "alice", Password: "secret"}

	first.EXPECT().Login(ctx, creds).Return(testUser(), nil)
	first.EXPECT().KeepAlive(gomock.Any()).Return(nil).AnyTimes()
	first.EXPECT().Logout(ctx)
	second.EXPECT().Login(ctx, creds).Return(testUser(), nil)
	second.EXPECT().KeepAlive(gomock.Any()).Return(nil).AnyTimes()
	second.EXPECT().Logout(ctx)

	f := newTestFactory(testConfig(time.Hour), first, second)
	old, err := f.Login(ctx, creds)
	require.NoError(t, err)

	s, err := f.Reconnect(ctx, old)
	require.NoError(t, err)
	assert.Equal(t, gateway.Gateway(second), s.Gateway())
	s.Logout(ctx)
}

func TestReconnect_NoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	ctx := context.Background()

	gw.EXPECT().Login(ctx, gomock.Any()).Return(testUser(), nil)
	gw.EXPECT().KeepAlive(gomock.Any()).Return(nil).AnyTimes()
	gw.EXPECT().Logout(ctx)

	f := newTestFactory(testConfig(time.Hour), gw)
	s, err := f.Login(ctx, remote.Credentials{UserName: "alice"})
	require.NoError(t, err)
	s.Registry().Clear()

	_, err = f.Reconnect(ctx, s)
	assert.ErrorIs(t, err, ErrNoCredentials)
	s.Logout(ctx)
}

func TestNewFactory_RealGateway(t *testing.T) {
	f := NewFactory(nil, testConfig(time.Hour), prometheus.NewRegistry(), logger.Nop())
	gw := f.newGateway()
	assert.False(t, gw.IsConnected())
}

func TestBrowserConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	ctx := context.Background()
	creds := remote.Credentials{UserName: "alice", Password: "secret"}

	gw.EXPECT().Login(ctx, creds).Return(nil, gateway.OutOfService("login", errors.New("refused")))

	c := browserConnector{newTestFactory(testConfig(time.Hour), gw)}
	s, err := c.Login(ctx, creds)
	assert.Error(t, err)
	assert.Nil(t, s, "a failed login must not return a typed nil session")
}

func TestNewApp(t *testing.T) {
	cfg := testConfig(time.Hour)
	cfg.Adapter = config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}

	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.factory)
	assert.NotNil(t, app.tui)
}
