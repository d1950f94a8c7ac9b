// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend implements the remote service contract on top of the
// relational store. It backs the development server and the end-to-end
// tests of the client stack.
package backend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
	"github.com/ome/openmicroscopy-sub022/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// RootUser is the administrator account created by Seed.
const RootUser = "root"

// Backend opens sessions and keeps them until they are closed or reaped.
type Backend struct {
	store store.Store
	quota int64
	uuids *utils.UUIDGenerator
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session

	logger *logger.Logger
}

// New returns a Backend over st. quota is the repository size reported by
// the repository service.
func New(st store.Store, quota int64, log *logger.Logger) *Backend {
	return &Backend{
		store:    st,
		quota:    quota,
		uuids:    utils.NewUUIDGenerator(),
		now:      time.Now,
		sessions: make(map[string]*Session),
		logger:   log.Component("backend"),
	}
}

// Connect checks the credentials and opens a session. Unknown users and
// wrong passwords get the same security fault.
func (b *Backend) Connect(ctx context.Context, creds remote.Credentials) (remote.Session, error) {
	return b.Login(ctx, creds)
}

// Login is Connect returning the concrete session.
func (b *Backend) Login(ctx context.Context, creds remote.Credentials) (*Session, error) {
	if creds.UserName == "" {
		return nil, remote.APIUsage("user name is required")
	}
	d := dao{st: b.store}

	users, err := typed[*remote.Experimenter](ctx, d, remote.KindExperimenter, store.ObjectFilter{Name: creds.UserName})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, remote.SecurityViolation("invalid credentials for %s", creds.UserName)
	}
	user := users[0]

	hash, err := b.store.PasswordHash(ctx, user.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, storeFault(err)
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		b.logger.Warn().Str("user", creds.UserName).Msg("login refused")
		return nil, remote.SecurityViolation("invalid credentials for %s", creds.UserName)
	}

	ec, err := b.eventContext(ctx, d, user)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		backend:  b,
		ec:       ec,
		handles:  make(map[string]handle),
		lastUsed: b.now(),
	}

	b.mu.Lock()
	b.sessions[ec.SessionUUID] = sess
	b.mu.Unlock()

	b.logger.Info().Str("user", ec.UserName).Str("session", ec.SessionUUID).Msg("session opened")
	return sess, nil
}

func (b *Backend) eventContext(ctx context.Context, d dao, user *remote.Experimenter) (remote.EventContext, error) {
	memberships, err := d.links(ctx, linkGroupMember, store.LinkFilter{ChildIDs: []int64{user.ID}})
	if err != nil {
		return remote.EventContext{}, err
	}

	ec := remote.EventContext{
		SessionUUID: b.uuids.Generate(),
		UserID:      user.ID,
		UserName:    user.OmeName,
		IsAdmin:     user.OmeName == RootUser,
	}
	for _, m := range memberships {
		ec.MemberOfGroups = append(ec.MemberOfGroups, m.ParentID)
		if m.OwnerID == user.ID {
			ec.LeaderOfGroups = append(ec.LeaderOfGroups, m.ParentID)
		}
	}
	if len(ec.MemberOfGroups) > 0 {
		ec.GroupID = ec.MemberOfGroups[0]
		grp, err := d.object(ctx, remote.KindExperimenterGroup, ec.GroupID)
		if err != nil {
			return remote.EventContext{}, err
		}
		if g, ok := grp.(*remote.ExperimenterGroup); ok {
			ec.GroupName = g.Name
		}
	}
	return ec, nil
}

// Session returns the open session with the given uuid.
func (b *Backend) Session(uuid string) (*Session, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[uuid]
	return s, ok
}

// Reap closes every session unused for longer than idle and returns how
// many were closed.
func (b *Backend) Reap(ctx context.Context, idle time.Duration) int {
	cutoff := b.now().Add(-idle)

	b.mu.Lock()
	var stale []*Session
	for id, s := range b.sessions {
		if s.idleSince().Before(cutoff) {
			stale = append(stale, s)
			delete(b.sessions, id)
		}
	}
	b.mu.Unlock()

	for _, s := range stale {
		s.shutdown(ctx)
		b.logger.Info().Str("session", s.ec.SessionUUID).Msg("session reaped")
	}
	return len(stale)
}

// Sessions returns the number of open sessions.
func (b *Backend) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *Backend) forget(uuid string) {
	b.mu.Lock()
	delete(b.sessions, uuid)
	b.mu.Unlock()
}
