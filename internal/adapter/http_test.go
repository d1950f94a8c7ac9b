// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	handler "github.com/ome/openmicroscopy-sub022/internal/handler/http"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootPassword = "root-secret"

// newTestServer serves a seeded development backend.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{Driver: store.DriverSQLite, DSN: filepath.Join(t.TempDir(), "adapter.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b := backend.New(store.NewStore(db), 1<<30, logger.Nop())
	require.NoError(t, b.Seed(ctx, rootPassword, true))

	cfg := &config.ServerConfig{
		Auth: config.Auth{TokenSignKey: "sign-key", TokenIssuer: "omero-test", TokenDuration: time.Hour},
	}
	h, err := handler.NewHandler(b, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newTestAdapter(t *testing.T, address string) remote.Connector {
	t.Helper()
	c, err := NewHTTPConnector(config.ClientAdapter{HTTPAddress: address, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func connect(t *testing.T, c remote.Connector) remote.Session {
	t.Helper()
	s, err := c.Connect(context.Background(), remote.Credentials{UserName: backend.RootUser, Password: rootPassword})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"host and port", "localhost:4064", "http://localhost:4064", false},
		{"scheme kept", "https://omero.example.org/", "https://omero.example.org", false},
		{"blank", "  ", "", true},
		{"no host", "http://", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPConnector_InvalidAddress(t *testing.T) {
	_, err := NewHTTPConnector(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"fault body wins", http.StatusInternalServerError, `{"fault":"SecurityViolation","message":"no"}`, remote.IsSecurityViolation},
		{"unauthorized", http.StatusUnauthorized, "", remote.IsSessionInvalid},
		{"forbidden", http.StatusForbidden, "nope", remote.IsSecurityViolation},
		{"unprocessable", http.StatusUnprocessableEntity, "", remote.IsBadArgument},
		{"not found", http.StatusNotFound, "", remote.IsBadArgument},
		{"bad gateway", http.StatusBadGateway, "", func(err error) bool { return errors.Is(err, ErrUnavailable) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Connect(context.Background(), remote.Credentials{UserName: "u"})
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestConnect(t *testing.T) {
	srv := newTestServer(t)
	c := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	s := connect(t, c)
	ec, err := s.AdminService().GetEventContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, backend.RootUser, ec.UserName)
	require.NoError(t, s.KeepAlive(ctx))

	_, err = c.Connect(ctx, remote.Credentials{UserName: backend.RootUser, Password: "wrong"})
	assert.True(t, remote.IsSecurityViolation(err))
}

func TestConnect_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, address).Connect(context.Background(), remote.Credentials{UserName: "u"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSession_Close(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	s := connect(t, newTestAdapter(t, srv.URL))

	require.NoError(t, s.Close(ctx))
	require.NoError(t, s.Close(ctx))

	err := s.KeepAlive(ctx)
	assert.True(t, remote.IsSessionInvalid(err))
	assert.ErrorContains(t, err, ErrSessionClosed.Error())
}

func TestServices(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	s := connect(t, newTestAdapter(t, srv.URL))

	roots, err := s.ContainerService().LoadContainerHierarchy(ctx, remote.KindProject, nil,
		remote.NewOptions().Leaves().CountFields(remote.PropertyAnnotationLinks))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	project := roots[0].(*remote.Project)
	assert.Equal(t, 2, project.DatasetLinks.Len())

	anns, err := s.ContainerService().FindAnnotations(ctx, remote.KindProject, []int64{project.ID}, nil, nil)
	require.NoError(t, err)
	require.Len(t, anns[project.ID], 1)
	assert.Equal(t, remote.KindTagAnnotation, anns[project.ID][0].Kind())

	images, err := s.ContainerService().GetImages(ctx, remote.KindProject, []int64{project.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, images, 3)

	saved, err := s.UpdateService().SaveAndReturnObject(ctx, &remote.Dataset{Name: "remote"})
	require.NoError(t, err)
	require.NotZero(t, saved.GetID())

	got, err := s.QueryService().Get(ctx, remote.KindDataset, saved.GetID())
	require.NoError(t, err)
	assert.Equal(t, "remote", got.(*remote.Dataset).Name)

	require.NoError(t, s.UpdateService().DeleteObject(ctx, saved))
	found, err := s.QueryService().Find(ctx, remote.KindDataset, saved.GetID())
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = s.QueryService().Get(ctx, remote.KindDataset, saved.GetID())
	assert.True(t, remote.IsBadArgument(err))

	used, err := s.RepositoryService().GetUsedSpace(ctx)
	require.NoError(t, err)
	free, err := s.RepositoryService().GetFreeSpace(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<30), used+free)
}

func TestStores(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	s := connect(t, newTestAdapter(t, srv.URL))

	pixels, err := s.QueryService().FindAll(ctx, remote.KindPixels, remote.Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, pixels, 1)
	px := pixels[0].(*remote.Pixels)

	thumbs, err := s.CreateThumbnailStore(ctx)
	require.NoError(t, err)
	_, err = thumbs.SetPixelsID(ctx, px.ID)
	require.NoError(t, err)
	set, err := thumbs.GetThumbnailSet(ctx, 16, []int64{px.ID})
	require.NoError(t, err)
	assert.Contains(t, set, px.ID)

	_, err = thumbs.GetThumbnail(ctx, 0, 0)
	assert.True(t, remote.IsBadArgument(err))
	require.NoError(t, thumbs.Close(ctx))

	_, err = thumbs.GetThumbnail(ctx, 8, 8)
	assert.True(t, remote.IsSessionInvalid(err))

	re, err := s.CreateRenderingEngine(ctx)
	require.NoError(t, err)
	defer re.Close(ctx)
	require.NoError(t, re.LookupPixels(ctx, px.ID))
	require.NoError(t, re.Load(ctx))
	require.NoError(t, re.SetActive(ctx, 0, false))
	def, err := re.GetRenderingDef(ctx)
	require.NoError(t, err)
	assert.False(t, def.Channels[0].Active)
	data, err := re.Render(ctx, remote.PlaneDef{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	raw, err := s.CreateRawPixelsStore(ctx)
	require.NoError(t, err)
	defer raw.Close(ctx)
	require.NoError(t, raw.SetPixelsID(ctx, px.ID))
	plane, err := raw.GetPlane(ctx, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, plane, px.SizeX*px.SizeY)
}
