// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/mock"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	gw        *omeroGateway
	reg       *prometheus.Registry
	connector *mock.MockConnector
	session   *mock.MockSession
	admin     *mock.MockAdminService
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller, threshold int) *testEnv {
	t.Helper()

	env := &testEnv{
		reg:       prometheus.NewRegistry(),
		connector: mock.NewMockConnector(ctrl),
		session:   mock.NewMockSession(ctrl),
		admin:     mock.NewMockAdminService(ctrl),
	}
	env.session.EXPECT().AdminService().Return(env.admin).AnyTimes()
	cfg := config.Gateway{ThumbnailRecycleThreshold: threshold}
	env.gw = New(env.connector, cfg, env.reg, logger.Nop()).(*omeroGateway)
	return env
}

// connect logs in as user 7 without going through mock expectations on the
// connector.
func (e *testEnv) connect() {
	e.gw.session = e.session
	e.gw.user = models.NewExperimenterDataFrom(&remote.Experimenter{Base: remote.Base{ID: 7}, OmeName: "root"})
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	ctx := context.Background()
	creds := remote.Credentials{UserName: "root", Password: "secret"}

	gomock.InOrder(
		env.connector.EXPECT().Connect(ctx, creds).Return(env.session, nil),
		env.admin.EXPECT().GetEventContext(ctx).Return(remote.EventContext{UserID: 7, UserName: "root"}, nil),
		env.admin.EXPECT().GetExperimenter(ctx, int64(7)).
			Return(&remote.Experimenter{Base: remote.Base{ID: 7}, OmeName: "root"}, nil),
	)

	user, err := env.gw.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID())
	assert.Equal(t, "root", user.UserName())
	assert.True(t, env.gw.IsConnected())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.gw.metrics.calls.WithLabelValues("login", "ok")))
}

func TestLogin_FailuresAreOutOfService(t *testing.T) {
	ctx := context.Background()
	creds := remote.Credentials{UserName: "root", Password: "bad"}

	tests := []struct {
		name  string
		setup func(env *testEnv)
	}{
		{
			name: "connect refused",
			setup: func(env *testEnv) {
				env.connector.EXPECT().Connect(ctx, creds).Return(nil, remote.SecurityViolation("bad password"))
			},
		},
		{
			name: "event context unavailable",
			setup: func(env *testEnv) {
				env.connector.EXPECT().Connect(ctx, creds).Return(env.session, nil)
				env.admin.EXPECT().GetEventContext(ctx).Return(remote.EventContext{}, remote.ServerError("boom"))
				env.session.EXPECT().Close(ctx).Return(nil)
			},
		},
		{
			name: "no experimenter",
			setup: func(env *testEnv) {
				env.connector.EXPECT().Connect(ctx, creds).Return(env.session, nil)
				env.admin.EXPECT().GetEventContext(ctx).Return(remote.EventContext{UserID: 3}, nil)
				env.admin.EXPECT().GetExperimenter(ctx, int64(3)).Return(nil, nil)
				env.session.EXPECT().Close(ctx).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, ctrl, 0)
			tt.setup(env)

			user, err := env.gw.Login(ctx, creds)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrOutOfService)
			assert.NotErrorIs(t, err, ErrAccess)
			assert.False(t, env.gw.IsConnected())
			assert.Equal(t, 1.0, testutil.ToFloat64(env.gw.metrics.calls.WithLabelValues("login", "out_of_service")))
		})
	}
}

func TestLogout_ClosesStoresAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	ctx := context.Background()
	env.connect()

	thumbs := mock.NewMockThumbnailStore(ctrl)
	engine := mock.NewMockRenderingEngine(ctrl)
	env.gw.thumbs.store = thumbs
	env.gw.engines.engines[5] = engine

	thumbs.EXPECT().Close(ctx).Return(errors.New("already closed"))
	engine.EXPECT().Close(ctx).Return(nil)
	env.session.EXPECT().Close(ctx).Return(nil)

	env.gw.Logout(ctx)
	assert.False(t, env.gw.IsConnected())
	assert.Nil(t, env.gw.thumbs.store)
	assert.Empty(t, env.gw.engines.engines)

	// second logout is a no-op
	env.gw.Logout(ctx)
}

func TestCalls_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	ctx := context.Background()

	_, err := env.gw.GetObject(ctx, remote.KindProject, 1)
	assert.ErrorIs(t, err, ErrOutOfService)
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = env.gw.GetThumbnail(ctx, 1, 96, 96)
	assert.ErrorIs(t, err, ErrOutOfService)

	assert.ErrorIs(t, env.gw.KeepAlive(ctx), ErrOutOfService)
}

func TestGetObject_FaultClassification(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		fault   error
		want    error
		outcome string
	}{
		{name: "security", fault: remote.SecurityViolation("not yours"), want: ErrSecurityDenied, outcome: "security_denied"},
		{name: "validation", fault: remote.Validation("no such project"), want: ErrInvalidArguments, outcome: "invalid_arguments"},
		{name: "api usage", fault: remote.APIUsage("bad kind"), want: ErrInvalidArguments, outcome: "invalid_arguments"},
		{name: "server", fault: remote.ServerError("db down"), want: ErrOutOfService, outcome: "out_of_service"},
		{name: "session", fault: remote.SessionInvalid("expired"), want: ErrOutOfService, outcome: "out_of_service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, ctrl, 0)
			env.connect()
			query := mock.NewMockQueryService(ctrl)
			env.session.EXPECT().QueryService().Return(query)
			query.EXPECT().Get(ctx, remote.KindProject, int64(9)).Return(nil, tt.fault)

			obj, err := env.gw.GetObject(ctx, remote.KindProject, 9)
			assert.Nil(t, obj)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.fault, "cause is kept")

			var gwErr *Error
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.want == ErrSecurityDenied || tt.want == ErrInvalidArguments, gwErr.Kind.IsAccess())
			assert.Equal(t, 1.0, testutil.ToFloat64(env.gw.metrics.calls.WithLabelValues("get_object", tt.outcome)))
		})
	}
}

func TestLoadContainerHierarchy(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non container roots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()

		_, err := env.gw.LoadContainerHierarchy(ctx, remote.KindImage, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("maps roots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()
		containers := mock.NewMockContainerService(ctrl)
		env.session.EXPECT().ContainerService().Return(containers)

		p := &remote.Project{Base: remote.Base{ID: 1}, Name: "p"}
		containers.EXPECT().LoadContainerHierarchy(ctx, remote.KindProject, []int64{1}, gomock.Nil()).
			Return([]remote.Object{p}, nil)

		out, err := env.gw.LoadContainerHierarchy(ctx, remote.KindProject, []int64{1}, nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		proj, ok := out[0].(*models.ProjectData)
		require.True(t, ok)
		assert.Equal(t, "p", proj.Name())
	})

	t.Run("unknown object in the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		env := newTestEnv(t, ctrl, 0)
		env.connect()
		containers := mock.NewMockContainerService(ctrl)
		env.session.EXPECT().ContainerService().Return(containers)
		containers.EXPECT().LoadContainerHierarchy(ctx, remote.KindProject, nil, gomock.Nil()).
			Return([]remote.Object{&remote.ProjectDatasetLink{}}, nil)

		_, err := env.gw.LoadContainerHierarchy(ctx, remote.KindProject, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidArguments)
	})
}

func TestFindContainerHierarchy_NoImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	out, err := env.gw.FindContainerHierarchy(context.Background(), remote.KindDataset, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindLink(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()
	query := mock.NewMockQueryService(ctrl)
	env.session.EXPECT().QueryService().Return(query).Times(2)

	filter := remote.LinkFilter{ParentIDs: []int64{1}, ChildIDs: []int64{2}}
	link := &remote.ProjectDatasetLink{}
	query.EXPECT().FindLinks(ctx, remote.KindProjectDatasetLink, filter).Return([]remote.Object{link}, nil)
	query.EXPECT().FindLinks(ctx, remote.KindProjectDatasetLink, filter).Return(nil, nil)

	got, err := env.gw.FindLink(ctx, remote.KindProjectDatasetLink, 1, 2)
	require.NoError(t, err)
	assert.Same(t, link, got)

	got, err = env.gw.FindLink(ctx, remote.KindProjectDatasetLink, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = env.gw.FindLinks(ctx, remote.KindProject, remote.LinkFilter{})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestUpdateObject_RequiresSavedObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl, 0)
	env.connect()

	_, err := env.gw.UpdateObject(context.Background(), &remote.Project{Name: "new"})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(mock.NewMockConnector(gomock.NewController(t)), config.Gateway{}, reg, logger.Nop()).(*omeroGateway)
	b := New(mock.NewMockConnector(gomock.NewController(t)), config.Gateway{}, reg, logger.Nop()).(*omeroGateway)

	assert.Same(t, a.metrics.calls, b.metrics.calls)
	assert.Equal(t, DefaultThumbnailRecycleThreshold, a.thumbs.threshold)
}
