// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"fmt"

	"github.com/ome/openmicroscopy-sub022/internal/remote"
)

// PrepareUpdate copies the scalar fields of changes into current, the
// freshly loaded server copy of the same object, and unloads current's
// collections so that only scalars are sent back. Ownership details stay
// those of current.
func PrepareUpdate(current, changes remote.Object) (remote.Object, error) {
	if isNil(current) || isNil(changes) {
		return nil, ErrNilObject
	}
	if current.Kind() != changes.Kind() || current.GetID() != changes.GetID() {
		return nil, fmt.Errorf("%w: %s:%d vs %s:%d", ErrKindMismatch,
			current.Kind(), current.GetID(), changes.Kind(), changes.GetID())
	}

	switch c := current.(type) {
	case *remote.Project:
		ch := changes.(*remote.Project)
		c.Name, c.Description = ch.Name, ch.Description
	case *remote.Dataset:
		ch := changes.(*remote.Dataset)
		c.Name, c.Description = ch.Name, ch.Description
	case *remote.Image:
		ch := changes.(*remote.Image)
		c.Name, c.Description, c.AcquisitionDate = ch.Name, ch.Description, ch.AcquisitionDate
	case *remote.Screen:
		ch := changes.(*remote.Screen)
		c.Name, c.Description = ch.Name, ch.Description
		c.ProtocolDescription, c.ReagentSetDescription = ch.ProtocolDescription, ch.ReagentSetDescription
	case *remote.Plate:
		ch := changes.(*remote.Plate)
		c.Name, c.Description = ch.Name, ch.Description
		c.Status, c.ExternalIdentifier = ch.Status, ch.ExternalIdentifier
	case *remote.Well:
		ch := changes.(*remote.Well)
		c.Status, c.ExternalDescription = ch.Status, ch.ExternalDescription
	case *remote.Experimenter:
		ch := changes.(*remote.Experimenter)
		c.FirstName, c.MiddleName, c.LastName = ch.FirstName, ch.MiddleName, ch.LastName
		c.Email, c.Institution = ch.Email, ch.Institution
	case *remote.ExperimenterGroup:
		ch := changes.(*remote.ExperimenterGroup)
		c.Name, c.Description = ch.Name, ch.Description
	case *remote.CommentAnnotation:
		ch := changes.(*remote.CommentAnnotation)
		c.TextValue, c.Namespace, c.Description = ch.TextValue, ch.Namespace, ch.Description
	case *remote.TagAnnotation:
		ch := changes.(*remote.TagAnnotation)
		c.TextValue, c.Namespace, c.Description = ch.TextValue, ch.Namespace, ch.Description
	case *remote.URLAnnotation:
		ch := changes.(*remote.URLAnnotation)
		c.TextValue, c.Namespace, c.Description = ch.TextValue, ch.Namespace, ch.Description
	case *remote.LongAnnotation:
		ch := changes.(*remote.LongAnnotation)
		c.LongValue, c.Namespace, c.Description = ch.LongValue, ch.Namespace, ch.Description
	case *remote.FileAnnotation:
		ch := changes.(*remote.FileAnnotation)
		c.Namespace, c.Description = ch.Namespace, ch.Description
	default:
		return nil, fmt.Errorf("%w: cannot update %s", ErrUnknownType, current.Kind())
	}

	current.Unload()
	return current, nil
}
