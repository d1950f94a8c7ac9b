// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry holds the values shared by the services of one session.
package registry

import (
	"errors"
	"sync"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// Well-known keys.
const (
	KeyCurrentUser = "/current/user"
	KeyCredentials = "/user/credentials"
)

// ErrNotFound is returned when a key has no value or a value of another type.
var ErrNotFound = errors.New("registry: no such entry")

// Registry is a concurrency-safe keyed store. The zero value is not usable;
// call New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Bind stores v under key, replacing any previous value. A nil v removes the
// entry.
func (r *Registry) Bind(key string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v == nil {
		delete(r.entries, key)
		return
	}
	r.entries[key] = v
}

func (r *Registry) Lookup(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	return v, ok
}

func (r *Registry) Remove(key string) {
	r.Bind(key, nil)
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
}

// Get returns the value of key as a T.
func Get[T any](r *Registry, key string) (T, error) {
	var zero T
	v, ok := r.Lookup(key)
	if !ok {
		return zero, ErrNotFound
	}
	t, ok := v.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return t, nil
}

// CurrentUser returns the logged-in user, or nil.
func (r *Registry) CurrentUser() *models.ExperimenterData {
	u, _ := Get[*models.ExperimenterData](r, KeyCurrentUser)
	return u
}

func (r *Registry) SetCurrentUser(u *models.ExperimenterData) {
	if u == nil {
		r.Remove(KeyCurrentUser)
		return
	}
	r.Bind(KeyCurrentUser, u)
}

// Credentials returns the credentials used to log in.
func (r *Registry) Credentials() (remote.Credentials, bool) {
	c, err := Get[remote.Credentials](r, KeyCredentials)
	return c, err == nil
}

func (r *Registry) SetCredentials(c remote.Credentials) {
	r.Bind(KeyCredentials, c)
}
