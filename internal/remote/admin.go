// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

// Experimenter is a user account on the server.
type Experimenter struct {
	Base
	OmeName     string `json:"omeName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName,omitempty"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Institution string `json:"institution,omitempty"`

	Groups Collection[*ExperimenterGroup] `json:"groups"`
}

func (e *Experimenter) Kind() Kind      { return KindExperimenter }
func (e *Experimenter) shallow() Object { return shallowCopy(e) }
func (e *Experimenter) Unload()         { e.Groups.Unload() }

// ExperimenterGroup is a group of users sharing data.
type ExperimenterGroup struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Experimenters Collection[*Experimenter] `json:"experimenters"`
}

func (g *ExperimenterGroup) Kind() Kind      { return KindExperimenterGroup }
func (g *ExperimenterGroup) shallow() Object { return shallowCopy(g) }
func (g *ExperimenterGroup) Unload()         { g.Experimenters.Unload() }

// GroupExperimenterMap records membership of an experimenter in a group.
type GroupExperimenterMap struct {
	Base
	GroupID        int64 `json:"groupId"`
	ExperimenterID int64 `json:"experimenterId"`
	Owner          bool  `json:"owner,omitempty"`
}

func (m *GroupExperimenterMap) Kind() Kind      { return KindGroupExperimenterMap }
func (m *GroupExperimenterMap) shallow() Object { return shallowCopy(m) }

// Credentials identify a user to a server.
type Credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
}

// EventContext describes the security context of a session.
type EventContext struct {
	SessionUUID    string  `json:"sessionUuid"`
	UserID         int64   `json:"userId"`
	UserName       string  `json:"userName"`
	GroupID        int64   `json:"groupId"`
	GroupName      string  `json:"groupName"`
	MemberOfGroups []int64 `json:"memberOfGroups,omitempty"`
	LeaderOfGroups []int64 `json:"leaderOfGroups,omitempty"`
	IsAdmin        bool    `json:"isAdmin,omitempty"`
}
