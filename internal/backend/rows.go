// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/internal/store"
)

// Relations that have no remote link kind are kept in the links table under
// these names.
const (
	linkWellSample   = "WellSample"
	linkGroupMember  = "GroupExperimenterMap"
	defaultPerms     = "rwr---"
	bytesPerSample   = 1
	repositoryPrefix = "/OMERO/ManagedRepository"
)

// toRow flattens the scalar fields of obj into a row. Related collections
// are stored as links and never end up in the data column.
func toRow(obj remote.Object) (store.Object, error) {
	flat := remote.Shallow(obj)
	flat.SetID(0)
	d := *flat.GetDetails()
	*flat.GetDetails() = remote.Details{}

	data, err := json.Marshal(flat)
	if err != nil {
		return store.Object{}, fmt.Errorf("encode %s: %w", obj.Kind(), err)
	}

	row := store.Object{
		ID:          obj.GetID(),
		Kind:        string(obj.Kind()),
		ParentID:    parentOf(obj),
		OwnerID:     d.OwnerID,
		GroupID:     d.GroupID,
		Permissions: d.Permissions,
		Name:        nameOf(obj),
		Data:        data,
	}
	if d.CreatedAt != nil {
		row.CreatedAt = *d.CreatedAt
	}
	return row, nil
}

// fromRow rebuilds an object from its row; every collection is unloaded.
func fromRow(row store.Object) (remote.Object, error) {
	obj, err := remote.Decode(remote.Envelope{Type: remote.Kind(row.Kind), Data: row.Data})
	if err != nil {
		return nil, err
	}
	obj.Unload()
	obj.SetID(row.ID)
	*obj.GetDetails() = detailsOf(row.OwnerID, row.GroupID, row.Permissions, row.CreatedAt, row.UpdatedAt)
	return obj, nil
}

func detailsOf(owner, group int64, perms string, created, updated time.Time) remote.Details {
	d := remote.Details{OwnerID: owner, GroupID: group, Permissions: perms}
	if !created.IsZero() {
		c := created.UTC()
		d.CreatedAt = &c
	}
	if !updated.IsZero() {
		u := updated.UTC()
		d.UpdatedAt = &u
	}
	return d
}

func nameOf(obj remote.Object) string {
	switch o := obj.(type) {
	case *remote.Project:
		return o.Name
	case *remote.Dataset:
		return o.Name
	case *remote.Image:
		return o.Name
	case *remote.Screen:
		return o.Name
	case *remote.Plate:
		return o.Name
	case *remote.Experimenter:
		return o.OmeName
	case *remote.ExperimenterGroup:
		return o.Name
	case *remote.OriginalFile:
		return o.Name
	case *remote.TagAnnotation:
		return o.TextValue
	}
	return ""
}

func parentOf(obj remote.Object) int64 {
	switch o := obj.(type) {
	case *remote.Pixels:
		return o.ImageID
	case *remote.Well:
		return o.PlateID
	}
	return 0
}

// validate rejects objects the server would refuse to persist.
func validate(obj remote.Object) error {
	switch o := obj.(type) {
	case *remote.Project, *remote.Dataset, *remote.Image, *remote.Screen,
		*remote.Plate, *remote.ExperimenterGroup:
		if nameOf(o) == "" {
			return remote.Validation("%s name is required", obj.Kind())
		}
	case *remote.Experimenter:
		if o.OmeName == "" {
			return remote.Validation("experimenter login is required")
		}
	case *remote.Pixels:
		if o.ImageID == 0 {
			return remote.Validation("pixels must belong to an image")
		}
		if o.SizeX <= 0 || o.SizeY <= 0 || o.SizeZ <= 0 || o.SizeC <= 0 || o.SizeT <= 0 {
			return remote.Validation("pixels dimensions must be positive")
		}
	case *remote.Well:
		if o.PlateID == 0 {
			return remote.Validation("well must belong to a plate")
		}
	case *remote.TagAnnotation:
		if o.TextValue == "" {
			return remote.Validation("tag value is required")
		}
	case *remote.URLAnnotation:
		if o.TextValue == "" {
			return remote.Validation("url is required")
		}
	case *remote.LongAnnotation:
		if o.LongValue == nil {
			return remote.Validation("long value is required")
		}
	case *remote.OriginalFile:
		if o.Name == "" || o.Size < 0 {
			return remote.Validation("original file needs a name and a size")
		}
	case *remote.GroupExperimenterMap:
		return remote.APIUsage("group membership is managed by the administrator")
	}
	return nil
}
