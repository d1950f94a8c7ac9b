// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/backend"
	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/ome/openmicroscopy-sub022/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootPassword = "root-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{Driver: store.DriverSQLite, DSN: filepath.Join(t.TempDir(), "http.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	b := backend.New(store.NewStore(db), 1<<30, logger.Nop())
	require.NoError(t, b.Seed(ctx, rootPassword, true))

	cfg := &config.ServerConfig{
		App:  config.ClientApp{Version: "1.2.3"},
		Auth: config.Auth{TokenSignKey: "sign-key", TokenIssuer: "omero-test", TokenDuration: time.Hour},
	}
	h, err := NewHandler(b, cfg, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func loginAs(t *testing.T, srv *httptest.Server, user, password string) models.SessionResponse {
	t.Helper()
	status, body := call(t, srv, http.MethodPost, "/api/v0/session", "", remote.Credentials{UserName: user, Password: password})
	require.Equal(t, http.StatusOK, status, string(body))
	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func decodeFault(t *testing.T, body []byte) remote.Fault {
	t.Helper()
	var f remote.Fault
	require.NoError(t, json.Unmarshal(body, &f))
	return f
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	sess := loginAs(t, srv, backend.RootUser, rootPassword)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, backend.RootUser, sess.EventContext.UserName)
	assert.True(t, sess.EventContext.IsAdmin)

	status, body := call(t, srv, http.MethodPost, "/api/v0/session", "", remote.Credentials{UserName: backend.RootUser, Password: "nope"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, remote.FaultSecurityViolation, decodeFault(t, body).Kind)

	status, body = call(t, srv, http.MethodPost, "/api/v0/session", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, remote.FaultAPIUsage, decodeFault(t, body).Kind)
}

func TestAuthSession(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, srv, http.MethodPost, "/api/v0/session/keepalive", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, remote.FaultSession, decodeFault(t, body).Kind)
		})
	}

	sess := loginAs(t, srv, backend.RootUser, rootPassword)
	status, _ := call(t, srv, http.MethodPost, "/api/v0/session/keepalive", sess.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/v0/session", sess.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body := call(t, srv, http.MethodPost, "/api/v0/session/keepalive", sess.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, remote.FaultSession, decodeFault(t, body).Kind)
}

func TestContainerHierarchy(t *testing.T) {
	srv := newTestServer(t)
	sess := loginAs(t, srv, backend.RootUser, rootPassword)

	status, body := call(t, srv, http.MethodPost, "/api/v0/container/hierarchy", sess.Token,
		models.HierarchyRequest{RootKind: remote.KindProject, Options: remote.NewOptions().Exp(sess.EventContext.UserID)})
	require.Equal(t, http.StatusOK, status, string(body))

	var resp models.ObjectsBody
	require.NoError(t, json.Unmarshal(body, &resp))
	objs, err := remote.DecodeAll(resp.Objects)
	require.NoError(t, err)
	require.Len(t, objs, 1)

	project, ok := objs[0].(*remote.Project)
	require.True(t, ok)
	assert.Equal(t, "Demo project", project.Name)
	assert.Equal(t, 2, project.DatasetLinks.Len())
}

func TestQueryAndUpdate(t *testing.T) {
	srv := newTestServer(t)
	sess := loginAs(t, srv, backend.RootUser, rootPassword)

	env, err := remote.Encode(&remote.Dataset{Name: "via http"})
	require.NoError(t, err)
	status, body := call(t, srv, http.MethodPost, "/api/v0/update/save", sess.Token, models.ObjectBody{Object: &env})
	require.Equal(t, http.StatusOK, status, string(body))

	var saved models.ObjectBody
	require.NoError(t, json.Unmarshal(body, &saved))
	require.NotNil(t, saved.Object)
	ds, err := remote.DecodeAs[*remote.Dataset](*saved.Object)
	require.NoError(t, err)
	assert.NotZero(t, ds.ID)

	status, body = call(t, srv, http.MethodPost, "/api/v0/query/find", sess.Token, models.ObjectRequest{Kind: remote.KindDataset, ID: ds.ID + 1000})
	require.Equal(t, http.StatusOK, status)
	var found models.ObjectBody
	require.NoError(t, json.Unmarshal(body, &found))
	assert.Nil(t, found.Object)

	status, body = call(t, srv, http.MethodPost, "/api/v0/query/get", sess.Token, models.ObjectRequest{Kind: remote.KindDataset, ID: ds.ID + 1000})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, remote.FaultValidation, decodeFault(t, body).Kind)

	status, _ = call(t, srv, http.MethodPost, "/api/v0/update/delete", sess.Token, models.ObjectsBody{Objects: []remote.Envelope{*saved.Object}})
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, srv, http.MethodPost, "/api/v0/update/save", sess.Token, models.ObjectBody{Object: &remote.Envelope{Type: "Spaceship"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, remote.FaultAPIUsage, decodeFault(t, body).Kind)
}

func TestAdminAndRepository(t *testing.T) {
	srv := newTestServer(t)
	sess := loginAs(t, srv, backend.RootUser, rootPassword)

	status, body := call(t, srv, http.MethodPost, "/api/v0/admin/groups", sess.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var groups models.GroupsResponse
	require.NoError(t, json.Unmarshal(body, &groups))
	assert.NotEmpty(t, groups.Groups)

	status, body = call(t, srv, http.MethodPost, "/api/v0/repository/used", sess.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var used models.SpaceResponse
	require.NoError(t, json.Unmarshal(body, &used))
	assert.Positive(t, used.Bytes)

	status, _ = call(t, srv, http.MethodPost, "/api/v0/admin/password", sess.Token, models.PasswordRequest{Password: "changed"})
	assert.Equal(t, http.StatusOK, status)
	loginAs(t, srv, backend.RootUser, "changed")
}

func TestStores(t *testing.T) {
	srv := newTestServer(t)
	sess := loginAs(t, srv, backend.RootUser, rootPassword)

	status, body := call(t, srv, http.MethodPost, "/api/v0/query/find-all", sess.Token, models.FindAllRequest{Kind: remote.KindPixels, Filter: remote.Filter{Limit: 1}})
	require.Equal(t, http.StatusOK, status, string(body))
	var pixels models.ObjectsBody
	require.NoError(t, json.Unmarshal(body, &pixels))
	require.Len(t, pixels.Objects, 1)
	px, err := remote.DecodeAs[*remote.Pixels](pixels.Objects[0])
	require.NoError(t, err)

	status, body = call(t, srv, http.MethodPost, "/api/v0/stores?type="+models.StoreThumbnail, sess.Token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var created models.StoreResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.Handle)
	base := "/api/v0/stores/" + created.Handle + "/"

	status, body = call(t, srv, http.MethodPost, base+models.MethodGetThumbnail, sess.Token, models.StoreRequest{SizeX: 8, SizeY: 8})
	assert.Equal(t, http.StatusBadRequest, status, "no pixels selected yet")
	assert.Equal(t, remote.FaultAPIUsage, decodeFault(t, body).Kind)

	status, _ = call(t, srv, http.MethodPost, base+models.MethodSetPixelsID, sess.Token, models.StoreRequest{PixelsID: px.ID})
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, srv, http.MethodPost, base+models.MethodGetThumbnailByLongestSide, sess.Token, models.StoreRequest{Size: 16})
	require.Equal(t, http.StatusOK, status, string(body))
	var res models.StoreResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, bytes.HasPrefix(res.Data, []byte("\x89PNG")))

	status, _ = call(t, srv, http.MethodPost, base+"teleport", sess.Token, models.StoreRequest{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/v0/stores/"+created.Handle, sess.Token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = call(t, srv, http.MethodPost, base+models.MethodGetThumbnailByLongestSide, sess.Token, models.StoreRequest{Size: 16})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, remote.FaultSession, decodeFault(t, body).Kind)

	status, _ = call(t, srv, http.MethodPost, "/api/v0/stores?type=teapot", sess.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, srv, http.MethodPost, "/api/v0/stores/not-a-handle/"+models.MethodLoad, sess.Token, models.StoreRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, remote.FaultAPIUsage, decodeFault(t, body).Kind)
}

func TestVersionAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	status, body := call(t, srv, http.MethodGet, "/version", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.2.3", string(body))

	status, body = call(t, srv, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "omero_http_requests_total")
	assert.Contains(t, string(body), `route="/version"`)
}

func TestCheckHTTPMethod(t *testing.T) {
	srv := newTestServer(t)

	status, _ := call(t, srv, http.MethodGet, "/api/v0/session", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestWithGZip(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/version", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", strings.TrimSpace(string(data)))
}

func TestMetrics_CompressedOnce(t *testing.T) {
	srv := newTestServer(t)
	call(t, srv, http.MethodGet, "/version", "", nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/metrics", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "omero_http_requests_total")
}

func TestWithTraceID(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/version", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-1")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-1", resp.Header.Get(traceIDHeader))
}

func TestFaultStatus(t *testing.T) {
	tests := []struct {
		kind remote.FaultKind
		want int
	}{
		{remote.FaultSecurityViolation, http.StatusForbidden},
		{remote.FaultAPIUsage, http.StatusBadRequest},
		{remote.FaultValidation, http.StatusUnprocessableEntity},
		{remote.FaultSession, http.StatusUnauthorized},
		{remote.FaultServer, http.StatusInternalServerError},
		{"Other", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, faultStatus(tt.kind))
		})
	}
}
