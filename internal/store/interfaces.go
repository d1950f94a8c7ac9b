// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the objects, links, credentials and rendering
// settings of the development server in SQLite or PostgreSQL.
//
// Objects of every kind share one table: indexed columns hold what queries
// filter on and a JSON document holds the remaining scalar fields. Links
// between objects live in their own table so that both directions can be
// queried.
package store

import (
	"context"
	"time"
)

// Object is one stored server object.
type Object struct {
	ID   int64
	Kind string
	// ParentID is the owning object for kinds that have exactly one parent
	// (pixels of an image, wells of a plate). Zero otherwise.
	ParentID    int64
	OwnerID     int64
	GroupID     int64
	Permissions string
	Name        string
	Data        []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Link is one stored relation between two objects.
type Link struct {
	ID        int64
	Kind      string
	ParentID  int64
	ChildID   int64
	OwnerID   int64
	GroupID   int64
	CreatedAt time.Time
}

// ObjectFilter selects objects. Empty fields do not filter.
type ObjectFilter struct {
	Kind        string
	IDs         []int64
	ParentIDs   []int64
	OwnerID     int64
	GroupIDs    []int64
	Name        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       uint64
}

// LinkFilter selects links. Empty fields do not filter.
type LinkFilter struct {
	Kind      string
	IDs       []int64
	ParentIDs []int64
	ChildIDs  []int64
	OwnerID   int64
}

// ObjectRepository stores objects.
type ObjectRepository interface {
	// CreateObject inserts obj and returns it with its id and timestamps.
	CreateObject(ctx context.Context, obj Object) (Object, error)
	// UpdateObject rewrites the mutable columns of obj. It returns
	// ErrNotFound when no row has obj.ID.
	UpdateObject(ctx context.Context, obj Object) (Object, error)
	DeleteObjects(ctx context.Context, ids ...int64) error
	FindObjects(ctx context.Context, filter ObjectFilter) ([]Object, error)
}

// LinkRepository stores links.
type LinkRepository interface {
	// CreateLink returns ErrAlreadyExists when the same kind already joins
	// the two objects.
	CreateLink(ctx context.Context, link Link) (Link, error)
	DeleteLinks(ctx context.Context, ids ...int64) error
	// DeleteLinksOf removes every link having one of ids as parent or child.
	DeleteLinksOf(ctx context.Context, ids ...int64) error
	FindLinks(ctx context.Context, filter LinkFilter) ([]Link, error)
	// CountLinks returns the number of links of kind per parent id.
	CountLinks(ctx context.Context, filter LinkFilter) (map[int64]int64, error)
}

// CredentialRepository stores password hashes.
type CredentialRepository interface {
	SetPasswordHash(ctx context.Context, experimenterID int64, hash string) error
	// PasswordHash returns ErrNotFound when no password is set.
	PasswordHash(ctx context.Context, experimenterID int64) (string, error)
}

// RenderingRepository stores rendering settings per pixels set.
type RenderingRepository interface {
	SaveRenderingDef(ctx context.Context, pixelsID int64, data []byte) error
	// RenderingDef returns ErrNotFound when no settings are saved.
	RenderingDef(ctx context.Context, pixelsID int64) ([]byte, error)
}

// Store groups the repositories.
type Store interface {
	ObjectRepository
	LinkRepository
	CredentialRepository
	RenderingRepository

	// InTx runs fn against a store bound to one transaction. The
	// transaction commits when fn returns nil and is retried when the
	// database reports a transient failure.
	InTx(ctx context.Context, fn func(Store) error) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
