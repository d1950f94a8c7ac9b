// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

// handle is a stateful store owned by a session.
type handle interface {
	HandleID() string
	release()
}

// Session is one authenticated client. It implements remote.Session and
// owns the stateful stores created through it.
type Session struct {
	backend *Backend
	ec      remote.EventContext

	mu       sync.Mutex
	handles  map[string]handle
	lastUsed time.Time
	closed   bool
}

var _ remote.Session = (*Session)(nil)

func (s *Session) UUID() string { return s.ec.SessionUUID }

func (s *Session) UserID() int64 { return s.ec.UserID }

// check fails with a session fault once the session is closed and marks it
// used otherwise.
func (s *Session) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return remote.SessionInvalid("session %s is closed", s.ec.SessionUUID)
	}
	s.lastUsed = s.backend.now()
	return nil
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) dao() dao { return dao{st: s.backend.store} }

// inTx runs fn against a transactional dao.
func (s *Session) inTx(ctx context.Context, fn func(dao) error) error {
	return s.backend.store.InTx(ctx, func(tx store.Store) error {
		return fn(dao{st: tx})
	})
}

// canModify enforces that only owners and administrators change objects.
func (s *Session) canModify(obj remote.Object) error {
	if s.ec.IsAdmin {
		return nil
	}
	if owner := obj.GetDetails().OwnerID; owner != 0 && owner != s.ec.UserID {
		return remote.SecurityViolation("%s %d belongs to another user", obj.Kind(), obj.GetID())
	}
	return nil
}

func (s *Session) ContainerService() remote.ContainerService { return &containerService{s} }
func (s *Session) QueryService() remote.QueryService         { return &queryService{s} }
func (s *Session) UpdateService() remote.UpdateService       { return &updateService{s} }
func (s *Session) AdminService() remote.AdminService         { return &adminService{s} }
func (s *Session) RepositoryService() remote.RepositoryService {
	return &repositoryService{s}
}

func (s *Session) CreateThumbnailStore(ctx context.Context) (remote.ThumbnailStore, error) {
	h := &thumbnailStore{pixelsHandle: s.newPixelsHandle()}
	if err := s.register(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Session) CreateRenderingEngine(ctx context.Context) (remote.RenderingEngine, error) {
	h := &renderingEngine{pixelsHandle: s.newPixelsHandle()}
	if err := s.register(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Session) CreateRawPixelsStore(ctx context.Context) (remote.RawPixelsStore, error) {
	h := &rawPixelsStore{pixelsHandle: s.newPixelsHandle()}
	if err := s.register(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Session) register(h handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return remote.SessionInvalid("session %s is closed", s.ec.SessionUUID)
	}
	s.handles[h.HandleID()] = h
	s.lastUsed = s.backend.now()
	return nil
}

func (s *Session) unregister(id string) {
	s.mu.Lock()
	delete(s.handles, id)
	s.mu.Unlock()
}

// Handle returns the open stateful store with the given id.
func (s *Session) Handle(id string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.handles[id]
	return h, ok
}

func (s *Session) KeepAlive(ctx context.Context) error {
	return s.check()
}

func (s *Session) Close(ctx context.Context) error {
	s.shutdown(ctx)
	s.backend.forget(s.ec.SessionUUID)
	s.backend.logger.Info().Str("session", s.ec.SessionUUID).Msg("session closed")
	return nil
}

// shutdown marks the session closed and releases its handles.
func (s *Session) shutdown(context.Context) {
	s.mu.Lock()
	handles := s.handles
	s.handles = make(map[string]handle)
	s.closed = true
	s.mu.Unlock()

	for _, h := range handles {
		h.release()
	}
}
