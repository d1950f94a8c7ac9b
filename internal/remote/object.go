// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownKind is returned when a kind name has no matching object type.
var ErrUnknownKind = errors.New("unknown object kind")

// Object is implemented by every server object type in this package and by
// nothing else.
type Object interface {
	Kind() Kind
	GetID() int64
	SetID(id int64)
	GetDetails() *Details
	// Unload drops every loaded related collection.
	Unload()

	shallow() Object
}

// Details is the ownership and audit information attached to every object.
type Details struct {
	OwnerID     int64      `json:"ownerId,omitempty"`
	GroupID     int64      `json:"groupId,omitempty"`
	Permissions string     `json:"permissions,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Base holds the fields common to all objects. An ID of zero marks an object
// that has not been saved yet.
type Base struct {
	ID      int64   `json:"id,omitempty"`
	Details Details `json:"details"`
}

func (b *Base) GetID() int64          { return b.ID }
func (b *Base) SetID(id int64)        { b.ID = id }
func (b *Base) GetDetails() *Details  { return &b.Details }
func (b *Base) Unload()               {}
func (b *Base) IsTransient() bool     { return b.ID == 0 }
func (b *Base) OwnedBy(id int64) bool { return b.Details.OwnerID == id }

// Shallow returns a copy of o with all related collections unloaded. Nested
// pointers other than collections are shared with o.
func Shallow(o Object) Object {
	if o == nil {
		return nil
	}
	return o.shallow()
}

func shallowCopy[E any, P interface {
	*E
	Object
}](p P) P {
	ptr := (*E)(p)
	if ptr == nil {
		return nil
	}
	c := *ptr
	cp := P(&c)
	cp.Unload()
	return cp
}

// SameObject reports whether a and b denote the same server object. Saved
// objects compare by kind and id, transient ones by pointer identity.
func SameObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.GetID() == 0 || b.GetID() == 0 {
		return a == b
	}
	return a.Kind() == b.Kind() && a.GetID() == b.GetID()
}

// Collection is a related collection that is either unloaded (not fetched)
// or loaded with a possibly empty list of items. The zero value is unloaded.
type Collection[T any] struct {
	loaded bool
	items  []T
}

// Loaded returns a loaded collection holding a copy of items.
func Loaded[T any](items ...T) Collection[T] {
	c := Collection[T]{loaded: true, items: make([]T, len(items))}
	copy(c.items, items)
	return c
}

// IsLoaded reports whether the collection has been fetched.
func (c Collection[T]) IsLoaded() bool { return c.loaded }

// Items returns a copy of the items, or nil when the collection is unloaded.
func (c Collection[T]) Items() []T {
	if !c.loaded {
		return nil
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items, or -1 when the collection is unloaded.
func (c Collection[T]) Len() int {
	if !c.loaded {
		return -1
	}
	return len(c.items)
}

// Add appends items. Adding to an unloaded collection loads it first.
func (c *Collection[T]) Add(items ...T) {
	c.loaded = true
	c.items = append(c.items, items...)
}

// RemoveFunc drops every item for which match returns true and reports how
// many were removed. Unloaded collections are left untouched.
func (c *Collection[T]) RemoveFunc(match func(T) bool) int {
	if !c.loaded {
		return 0
	}
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// Unload forgets the items and marks the collection unloaded.
func (c *Collection[T]) Unload() {
	c.loaded = false
	c.items = nil
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if !c.loaded {
		return []byte("null"), nil
	}
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Collection[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		c.Unload()
		return nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.loaded = true
	c.items = items
	return nil
}

// count adjusts a cached collection count by delta when the count is known.
func count(p **int64, delta int) {
	if *p == nil {
		return
	}
	v := **p + int64(delta)
	if v < 0 {
		v = 0
	}
	*p = &v
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }
