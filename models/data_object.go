// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// DataObject is the common view over a wrapped server object.
type DataObject interface {
	// ID returns the server id, or -1 when the object has not been saved.
	ID() int64
	// Object returns the wrapped server object.
	Object() remote.Object
	IsDirty() bool
	OwnerID() int64
	GroupID() int64
	Permissions() string
	Created() *time.Time
	Updated() *time.Time
}

// ErrCollectionNotLoaded is returned by collection setters called on a saved
// object whose collection was never fetched.
var ErrCollectionNotLoaded = errors.New("collection not loaded")

type dataObject struct {
	value remote.Object
	dirty bool
}

func newDataObject(v remote.Object) dataObject {
	return dataObject{value: v}
}

// checkMutable refuses to replace the collection of a saved object when the
// collection is unloaded. An unsaved object has no links, so its unloaded
// collections are empty.
func (d *dataObject) checkMutable(loaded bool, property string) error {
	if loaded || d.IsTransient() {
		return nil
	}
	return fmt.Errorf("%w: %s of %s %d", ErrCollectionNotLoaded, property, d.Kind(), d.value.GetID())
}

// mustWrap panics when the object to wrap is missing.
func mustWrap(isNil bool, kind remote.Kind) {
	if isNil {
		panic(fmt.Sprintf("models: cannot wrap a nil %s", kind))
	}
}

func (d *dataObject) ID() int64 {
	if id := d.value.GetID(); id != 0 {
		return id
	}
	return -1
}

func (d *dataObject) Object() remote.Object { return d.value }
func (d *dataObject) IsDirty() bool         { return d.dirty }
func (d *dataObject) markDirty()            { d.dirty = true }

func (d *dataObject) OwnerID() int64        { return d.value.GetDetails().OwnerID }
func (d *dataObject) GroupID() int64        { return d.value.GetDetails().GroupID }
func (d *dataObject) Permissions() string   { return d.value.GetDetails().Permissions }
func (d *dataObject) Created() *time.Time   { return d.value.GetDetails().CreatedAt }
func (d *dataObject) Updated() *time.Time   { return d.value.GetDetails().UpdatedAt }
func (d *dataObject) Kind() remote.Kind     { return d.value.Kind() }
func (d *dataObject) IsTransient() bool     { return d.value.GetID() == 0 }
func (d *dataObject) OwnedBy(id int64) bool { return d.OwnerID() == id }

// lazy caches a wrapper collection derived from a server collection.
type lazy[T any] struct {
	loaded bool
	items  []T
}

// get builds the snapshot on first access once the server collection is
// loaded and returns a copy of it. It returns nil while unloaded.
func (l *lazy[T]) get(build func() ([]T, bool)) []T {
	if !l.loaded {
		items, ok := build()
		if !ok {
			return nil
		}
		l.items, l.loaded = items, true
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *lazy[T]) set(items []T) {
	l.items = make([]T, len(items))
	copy(l.items, items)
	l.loaded = true
}

func (l *lazy[T]) isLoaded() bool { return l.loaded }

func countOf(p *int64) int64 {
	if p == nil {
		return -1
	}
	return *p
}

// wrapLinked builds wrappers for the non-nil ends picked out of a loaded
// collection of links.
func wrapLinked[L any, E any, W any](c remote.Collection[L], end func(L) *E, wrap func(*E) W) ([]W, bool) {
	if !c.IsLoaded() {
		return nil, false
	}
	out := make([]W, 0, c.Len())
	for _, l := range c.Items() {
		if e := end(l); e != nil {
			out = append(out, wrap(e))
		}
	}
	return out, true
}

// wrapAll builds wrappers for every item of a loaded collection.
func wrapAll[E any, W any](c remote.Collection[*E], wrap func(*E) W) ([]W, bool) {
	return wrapLinked(c, func(e *E) *E { return e }, wrap)
}

// unwrap returns the wrapped objects of data as the concrete type T.
func unwrap[T remote.Object, D DataObject](data []D) []T {
	out := make([]T, 0, len(data))
	for _, d := range data {
		if t, ok := d.Object().(T); ok {
			out = append(out, t)
		}
	}
	return out
}
