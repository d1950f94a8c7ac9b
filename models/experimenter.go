// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// ExperimenterData wraps a user account.
type ExperimenterData struct {
	dataObject
	groups lazy[*GroupData]
}

// NewExperimenterData returns a dirty wrapper around a new experimenter.
func NewExperimenterData() *ExperimenterData {
	e := NewExperimenterDataFrom(&remote.Experimenter{})
	e.markDirty()
	return e
}

// NewExperimenterDataFrom wraps an existing experimenter. It panics when e
// is nil.
func NewExperimenterDataFrom(e *remote.Experimenter) *ExperimenterData {
	mustWrap(e == nil, remote.KindExperimenter)
	return &ExperimenterData{dataObject: newDataObject(e)}
}

func (e *ExperimenterData) experimenter() *remote.Experimenter {
	return e.value.(*remote.Experimenter)
}

// UserName returns the login name. It cannot be changed from the client.
func (e *ExperimenterData) UserName() string { return e.experimenter().OmeName }

func (e *ExperimenterData) FirstName() string { return e.experimenter().FirstName }

func (e *ExperimenterData) SetFirstName(v string) {
	e.markDirty()
	e.experimenter().FirstName = v
}

func (e *ExperimenterData) MiddleName() string { return e.experimenter().MiddleName }

func (e *ExperimenterData) SetMiddleName(v string) {
	e.markDirty()
	e.experimenter().MiddleName = v
}

func (e *ExperimenterData) LastName() string { return e.experimenter().LastName }

func (e *ExperimenterData) SetLastName(v string) {
	e.markDirty()
	e.experimenter().LastName = v
}

func (e *ExperimenterData) Email() string { return e.experimenter().Email }

func (e *ExperimenterData) SetEmail(v string) {
	e.markDirty()
	e.experimenter().Email = v
}

func (e *ExperimenterData) Institution() string { return e.experimenter().Institution }

func (e *ExperimenterData) SetInstitution(v string) {
	e.markDirty()
	e.experimenter().Institution = v
}

// DisplayName joins first and last name, falling back to the login name.
func (e *ExperimenterData) DisplayName() string {
	n := strings.TrimSpace(e.FirstName() + " " + e.LastName())
	if n == "" {
		return e.UserName()
	}
	return n
}

// Groups returns the groups of the experimenter, or nil when they were not
// loaded.
func (e *ExperimenterData) Groups() []*GroupData {
	return e.groups.get(func() ([]*GroupData, bool) {
		return wrapAll(e.experimenter().Groups, NewGroupDataFrom)
	})
}

// DefaultGroup returns the first group, or nil when groups are not loaded.
func (e *ExperimenterData) DefaultGroup() *GroupData {
	gs := e.Groups()
	if len(gs) == 0 {
		return nil
	}
	return gs[0]
}

// GroupData wraps an experimenter group.
type GroupData struct {
	dataObject
	experimenters lazy[*ExperimenterData]
}

// NewGroupDataFrom wraps an existing group. It panics when g is nil.
func NewGroupDataFrom(g *remote.ExperimenterGroup) *GroupData {
	mustWrap(g == nil, remote.KindExperimenterGroup)
	return &GroupData{dataObject: newDataObject(g)}
}

func (g *GroupData) group() *remote.ExperimenterGroup { return g.value.(*remote.ExperimenterGroup) }

func (g *GroupData) Name() string { return g.group().Name }

func (g *GroupData) SetName(v string) {
	g.markDirty()
	g.group().Name = v
}

func (g *GroupData) Description() string { return g.group().Description }

func (g *GroupData) SetDescription(v string) {
	g.markDirty()
	g.group().Description = v
}

// Experimenters returns the members of the group, or nil when they were
// not loaded.
func (g *GroupData) Experimenters() []*ExperimenterData {
	return g.experimenters.get(func() ([]*ExperimenterData, bool) {
		return wrapAll(g.group().Experimenters, NewExperimenterDataFrom)
	})
}
