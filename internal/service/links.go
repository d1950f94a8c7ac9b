// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"reflect"

	"github.com/ome/openmicroscopy-sub022/internal/gateway"
	"github.com/ome/openmicroscopy-sub022/internal/remote"
	"github.com/ome/openmicroscopy-sub022/models"
)

// linkKind returns the kind of link joining objects of the parent kind to
// objects of the child kind.
func linkKind(parent, child remote.Kind) (remote.Kind, error) {
	switch {
	case parent == remote.KindProject && child == remote.KindDataset:
		return remote.KindProjectDatasetLink, nil
	case parent == remote.KindDataset && child == remote.KindImage:
		return remote.KindDatasetImageLink, nil
	case parent == remote.KindScreen && child == remote.KindPlate:
		return remote.KindScreenPlateLink, nil
	case child.IsAnnotation():
		if k, ok := remote.AnnotationLinkKind(parent); ok {
			return k, nil
		}
	}
	return "", gateway.InvalidArguments("cannot link %s to %s", child, parent)
}

// newLink builds an unsaved link from parent to child. The parent is always
// sent as a reference. A saved child is sent as a reference too; a new one
// is created with the link.
func newLink(parent, child remote.Object) (remote.Object, error) {
	if _, err := linkKind(parent.Kind(), child.Kind()); err != nil {
		return nil, err
	}
	if child.GetID() != 0 {
		child = remote.Shallow(child)
	}
	parent = remote.Shallow(parent)

	switch p := parent.(type) {
	case *remote.Project:
		if ds, ok := child.(*remote.Dataset); ok {
			return &remote.ProjectDatasetLink{Parent: p, Child: ds}, nil
		}
	case *remote.Dataset:
		if img, ok := child.(*remote.Image); ok {
			return &remote.DatasetImageLink{Parent: p, Child: img}, nil
		}
	case *remote.Screen:
		if plate, ok := child.(*remote.Plate); ok {
			return &remote.ScreenPlateLink{Parent: p, Child: plate}, nil
		}
	}

	ann, ok := child.(remote.Annotation)
	if !ok {
		return nil, gateway.InvalidArguments("cannot link %s to %s", child.Kind(), parent.Kind())
	}
	link, err := remote.NewAnnotationLink(parent, ann)
	if err != nil {
		return nil, gateway.Classify("cannot build the annotation link", err)
	}
	return link, nil
}

// linkChild returns the child of a saved link.
func linkChild(link remote.Object) remote.Object {
	switch l := link.(type) {
	case *remote.ProjectDatasetLink:
		return l.Child
	case *remote.DatasetImageLink:
		return l.Child
	case *remote.ScreenPlateLink:
		return l.Child
	case *remote.AnnotationLink:
		return l.Child
	}
	return nil
}

// saved reports whether d is non-nil and has a server id.
func saved(d models.DataObject) bool {
	return !missing(d) && d.ID() > 0
}

// missing reports whether v is nil or a nil pointer held in an interface.
func missing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func ids[D models.DataObject](data []D) []int64 {
	out := make([]int64, 0, len(data))
	for _, d := range data {
		out = append(out, d.ID())
	}
	return out
}
