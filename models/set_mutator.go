// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ome/openmicroscopy-sub022/internal/remote"

// SetMutator computes how a wrapper collection changes from an original to
// a target set. Objects are the same when they wrap the same saved server
// object, or are the same transient wrapper.
type SetMutator[T DataObject] struct {
	removed []T
	added   []T
	result  []T
}

// NewSetMutator compares original with target. Duplicates in target are
// collapsed.
func NewSetMutator[T DataObject](original, target []T) *SetMutator[T] {
	m := &SetMutator[T]{}
	for _, t := range target {
		if !containsObject(m.result, t) {
			m.result = append(m.result, t)
		}
	}
	for _, o := range original {
		if !containsObject(m.result, o) && !containsObject(m.removed, o) {
			m.removed = append(m.removed, o)
		}
	}
	for _, t := range m.result {
		if !containsObject(original, t) {
			m.added = append(m.added, t)
		}
	}
	return m
}

// Removed returns original minus target.
func (m *SetMutator[T]) Removed() []T { return append([]T(nil), m.removed...) }

// Added returns target minus original.
func (m *SetMutator[T]) Added() []T { return append([]T(nil), m.added...) }

// Result returns the target set.
func (m *SetMutator[T]) Result() []T {
	out := make([]T, len(m.result))
	copy(out, m.result)
	return out
}

// Apply calls unlink for every removed element, then link for every added
// one.
func (m *SetMutator[T]) Apply(unlink, link func(T)) {
	for _, r := range m.removed {
		unlink(r)
	}
	for _, a := range m.added {
		link(a)
	}
}

func containsObject[T DataObject](set []T, x T) bool {
	for _, s := range set {
		if remote.SameObject(s.Object(), x.Object()) {
			return true
		}
	}
	return false
}
