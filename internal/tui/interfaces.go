// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/service"
	"github.com/ome/openmicroscopy-sub022/models"
)

// Session is an open login as seen by the browser.
type Session interface {
	Services() *service.Services
	User() *models.ExperimenterData
	Logout(ctx context.Context)
}

// Connector opens sessions.
type Connector interface {
	Login(ctx context.Context, creds remote.Credentials) (Session, error)
	// Reconnect replaces old, which the server no longer answers for, with
	// a new session for the same user.
	Reconnect(ctx context.Context, old Session) (Session, error)
}
