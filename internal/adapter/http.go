// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/config"
	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
	"github.com/ome/openmicroscopy-sub022/models"
)

type httpConnector struct {
	baseURL string
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPConnector returns a connector dialing the server at
// cfg.HTTPAddress. Credentials naming a host override the address for the
// session they open.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// URL.
func NewHTTPConnector(cfg config.ClientAdapter, log *logger.Logger) (remote.Connector, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpConnector{baseURL: baseURL, timeout: cfg.RequestTimeout, logger: log.Component("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// sessionURL picks the base URL for creds.
func (c *httpConnector) sessionURL(creds remote.Credentials) (string, error) {
	if creds.Host == "" {
		return c.baseURL, nil
	}
	host := creds.Host
	if creds.Port > 0 {
		host = net.JoinHostPort(creds.Host, strconv.Itoa(creds.Port))
	}
	return normalizeBaseURL(host)
}

// Connect implements [remote.Connector]. It POSTs the credentials to
// /api/v0/session and keeps the returned token for the calls of the
// session.
func (c *httpConnector) Connect(ctx context.Context, creds remote.Credentials) (remote.Session, error) {
	baseURL, err := c.sessionURL(creds)
	if err != nil {
		return nil, remote.APIUsage("invalid server address %q: %v", creds.Host, err)
	}

	client := utils.NewHTTPClient(baseURL, c.timeout)

	var session models.SessionResponse
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(remote.Credentials{UserName: creds.UserName, Password: creds.Password}).
		SetResult(&session).
		Post("/api/v0/session")
	if err != nil {
		return nil, fmt.Errorf("%w: login request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	token := session.Token
	if header, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		token = header
	}
	if token == "" {
		return nil, remote.ServerError("login response carries no session token")
	}

	c.logger.Info().Str("server", baseURL).Str("user", creds.UserName).Msg("session opened")
	return &httpSession{client: client, token: token, logger: c.logger}, nil
}

type httpSession struct {
	client *utils.HTTPClient
	token  string

	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

var _ remote.Session = (*httpSession)(nil)

func (s *httpSession) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return remote.SessionInvalid("%v", ErrSessionClosed)
	}
	return nil
}

// post sends body to path and decodes the JSON answer into Resp.
func post[Resp any](ctx context.Context, s *httpSession, path string, body any) (Resp, error) {
	var out Resp
	if err := s.check(); err != nil {
		return out, err
	}

	req := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.token).
		SetResult(&out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	return out, nil
}

func (s *httpSession) ContainerService() remote.ContainerService   { return &containerService{s} }
func (s *httpSession) QueryService() remote.QueryService           { return &queryService{s} }
func (s *httpSession) UpdateService() remote.UpdateService         { return &updateService{s} }
func (s *httpSession) AdminService() remote.AdminService           { return &adminService{s} }
func (s *httpSession) RepositoryService() remote.RepositoryService { return &repositoryService{s} }

func (s *httpSession) KeepAlive(ctx context.Context) error {
	_, err := post[struct{}](ctx, s, "/api/v0/session/keepalive", nil)
	return err
}

// Close ends the session on the server. The session is unusable afterwards
// even when the server cannot be reached.
func (s *httpSession) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.token).
		Delete("/api/v0/session")
	if err != nil {
		return fmt.Errorf("%w: logout request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil && !remote.IsSessionInvalid(err) {
		return err
	}
	s.logger.Info().Msg("session closed")
	return nil
}
